package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/balansai/miniapp-backend/adapters/ginutil"
	"github.com/balansai/miniapp-backend/warehouse"
)

type movementRequest struct {
	ProductID int64   `json:"product_id"`
	Type      string  `json:"movement_type"`
	Quantity  float64 `json:"quantity"`
	Price     float64 `json:"price"`
	Reason    string  `json:"reason"`
}

func HandleWarehouseMovementsPOST(env Env, store *warehouse.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req movementRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			ginutil.BadRequest(c, "invalid request body")
			return
		}
		if req.ProductID <= 0 {
			ginutil.BadRequest(c, "product_id is required")
			return
		}
		if req.Type != warehouse.MovementIn && req.Type != warehouse.MovementOut {
			ginutil.BadRequest(c, "movement_type must be 'in' or 'out'")
			return
		}
		if req.Quantity <= 0 {
			ginutil.BadRequest(c, "quantity must be positive")
			return
		}
		if req.Reason == "" {
			req.Reason = "other"
		}

		err := store.CreateMovement(c.Request.Context(), &warehouse.Movement{
			UserID:    ginutil.CurrentUserID(c),
			ProductID: req.ProductID,
			Type:      req.Type,
			Quantity:  req.Quantity,
			Price:     req.Price,
			Reason:    req.Reason,
		})
		if err != nil {
			env.serverErr(c, err, "failed to create movement")
			return
		}
		ginutil.OK(c, nil)
	}
}
