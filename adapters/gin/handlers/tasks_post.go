package handlers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/balansai/miniapp-backend/adapters/ginutil"
	"github.com/balansai/miniapp-backend/staff"
)

type taskRequest struct {
	EmployeeID  *int64     `json:"employee_id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	Status      string     `json:"status"`
}

func (r *taskRequest) validate() string {
	if strings.TrimSpace(r.Title) == "" {
		return "title is required"
	}
	switch r.Status {
	case "", staff.StatusPending, staff.StatusInProgress, staff.StatusCompleted:
		return ""
	}
	return "invalid status"
}

func HandleTasksPOST(env Env, store *staff.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req taskRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			ginutil.BadRequest(c, "invalid request body")
			return
		}
		if msg := req.validate(); msg != "" {
			ginutil.BadRequest(c, msg)
			return
		}

		id, err := store.CreateTask(c.Request.Context(), &staff.Task{
			OwnerID:     ginutil.CurrentUserID(c),
			EmployeeID:  req.EmployeeID,
			Title:       req.Title,
			Description: req.Description,
			DueDate:     req.DueDate,
			Status:      req.Status,
		})
		if err != nil {
			env.serverErr(c, err, "failed to create task")
			return
		}
		ginutil.OK(c, gin.H{"id": id})
	}
}
