package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/balansai/miniapp-backend/adapters/ginutil"
	"github.com/balansai/miniapp-backend/warehouse"
)

func HandleWarehouseProductsGET(env Env, store *warehouse.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := store.ListProducts(c.Request.Context(), ginutil.CurrentUserID(c))
		if err != nil {
			env.serverErr(c, err, "failed to list products")
			return
		}
		ginutil.OK(c, products)
	}
}
