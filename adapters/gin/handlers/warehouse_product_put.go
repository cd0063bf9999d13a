package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/balansai/miniapp-backend/adapters/ginutil"
	"github.com/balansai/miniapp-backend/warehouse"
)

func HandleWarehouseProductPUT(env Env, store *warehouse.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		var req productRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			ginutil.BadRequest(c, "invalid request body")
			return
		}
		if msg := req.validate(); msg != "" {
			ginutil.BadRequest(c, msg)
			return
		}

		err := store.UpdateProduct(c.Request.Context(), &warehouse.Product{
			ID:          id,
			UserID:      ginutil.CurrentUserID(c),
			Name:        req.Name,
			Category:    req.Category,
			Barcode:     req.Barcode,
			Price:       req.Price,
			Quantity:    req.Quantity,
			MinQuantity: req.MinQuantity,
			Unit:        req.Unit,
			ImageURL:    req.ImageURL,
		})
		if err != nil {
			env.serverErr(c, err, "failed to update product")
			return
		}
		ginutil.OK(c, nil)
	}
}
