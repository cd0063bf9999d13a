package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/balansai/miniapp-backend/adapters/ginutil"
	"github.com/balansai/miniapp-backend/staff"
)

func HandleTasksGET(env Env, store *staff.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		tasks, err := store.ListTasks(c.Request.Context(), ginutil.CurrentUserID(c), c.Query("status"))
		if err != nil {
			env.serverErr(c, err, "failed to list tasks")
			return
		}
		ginutil.OK(c, tasks)
	}
}
