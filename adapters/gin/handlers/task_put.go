package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/balansai/miniapp-backend/adapters/ginutil"
	"github.com/balansai/miniapp-backend/staff"
)

func HandleTaskPUT(env Env, store *staff.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		var req taskRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			ginutil.BadRequest(c, "invalid request body")
			return
		}
		if msg := req.validate(); msg != "" {
			ginutil.BadRequest(c, msg)
			return
		}
		if req.Status == "" {
			req.Status = staff.StatusPending
		}

		err := store.UpdateTask(c.Request.Context(), &staff.Task{
			ID:          id,
			OwnerID:     ginutil.CurrentUserID(c),
			EmployeeID:  req.EmployeeID,
			Title:       req.Title,
			Description: req.Description,
			DueDate:     req.DueDate,
			Status:      req.Status,
		})
		if err != nil {
			env.serverErr(c, err, "failed to update task")
			return
		}
		ginutil.OK(c, nil)
	}
}
