package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/balansai/miniapp-backend/adapters/ginutil"
	"github.com/balansai/miniapp-backend/warehouse"
)

func HandleWarehouseProductDELETE(env Env, store *warehouse.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		if err := store.DeleteProduct(c.Request.Context(), ginutil.CurrentUserID(c), id); err != nil {
			env.serverErr(c, err, "failed to delete product")
			return
		}
		ginutil.OK(c, nil)
	}
}
