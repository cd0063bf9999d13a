package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/balansai/miniapp-backend/adapters/ginutil"
	"github.com/balansai/miniapp-backend/staff"
)

type employeeRequest struct {
	TelegramID *int64 `json:"telegram_id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	IsActive   *bool  `json:"is_active"`
}

func HandleEmployeesPOST(env Env, store *staff.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req employeeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			ginutil.BadRequest(c, "invalid request body")
			return
		}
		if strings.TrimSpace(req.Name) == "" {
			ginutil.BadRequest(c, "name is required")
			return
		}
		if req.Role == "" {
			req.Role = "employee"
		}

		id, err := store.CreateEmployee(c.Request.Context(), &staff.Employee{
			OwnerID:    ginutil.CurrentUserID(c),
			TelegramID: req.TelegramID,
			Name:       req.Name,
			Role:       req.Role,
		})
		if err != nil {
			env.serverErr(c, err, "failed to create employee")
			return
		}
		ginutil.OK(c, gin.H{"id": id})
	}
}
