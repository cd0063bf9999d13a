package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/balansai/miniapp-backend/adapters/ginutil"
	"github.com/balansai/miniapp-backend/ledger"
)

func HandleTransactionsGET(env Env, store *ledger.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

		txs, err := store.List(c.Request.Context(), ginutil.CurrentUserID(c), limit)
		if err != nil {
			env.serverErr(c, err, "failed to list transactions")
			return
		}
		ginutil.OK(c, txs)
	}
}
