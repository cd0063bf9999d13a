package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/balansai/miniapp-backend/adapters/ginutil"
	"github.com/balansai/miniapp-backend/staff"
)

func HandleEmployeeDELETE(env Env, store *staff.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		if err := store.DeleteEmployee(c.Request.Context(), ginutil.CurrentUserID(c), id); err != nil {
			env.serverErr(c, err, "failed to delete employee")
			return
		}
		ginutil.OK(c, nil)
	}
}
