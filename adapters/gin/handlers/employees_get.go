package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/balansai/miniapp-backend/adapters/ginutil"
	"github.com/balansai/miniapp-backend/staff"
)

func HandleEmployeesGET(env Env, store *staff.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		employees, err := store.ListEmployees(c.Request.Context(), ginutil.CurrentUserID(c))
		if err != nil {
			env.serverErr(c, err, "failed to list employees")
			return
		}
		ginutil.OK(c, employees)
	}
}
