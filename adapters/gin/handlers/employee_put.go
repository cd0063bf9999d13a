package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/balansai/miniapp-backend/adapters/ginutil"
	"github.com/balansai/miniapp-backend/staff"
)

func HandleEmployeePUT(env Env, store *staff.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
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
		active := true
		if req.IsActive != nil {
			active = *req.IsActive
		}

		err := store.UpdateEmployee(c.Request.Context(), &staff.Employee{
			ID:       id,
			OwnerID:  ginutil.CurrentUserID(c),
			Name:     req.Name,
			Role:     req.Role,
			IsActive: active,
		})
		if err != nil {
			env.serverErr(c, err, "failed to update employee")
			return
		}
		ginutil.OK(c, nil)
	}
}
