package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/balansai/miniapp-backend/adapters/ginutil"
	"github.com/balansai/miniapp-backend/warehouse"
)

func HandleWarehouseMovementsGET(env Env, store *warehouse.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var productID *int64
		if raw := c.Query("product_id"); raw != "" {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || id <= 0 {
				ginutil.BadRequest(c, "invalid product_id")
				return
			}
			productID = &id
		}

		movements, err := store.ListMovements(c.Request.Context(), ginutil.CurrentUserID(c), productID)
		if err != nil {
			env.serverErr(c, err, "failed to list movements")
			return
		}
		ginutil.OK(c, movements)
	}
}
