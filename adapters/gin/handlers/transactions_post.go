package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/balansai/miniapp-backend/adapters/ginutil"
	"github.com/balansai/miniapp-backend/ledger"
)

type transactionRequest struct {
	Type     string  `json:"transaction_type"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	Note     *string `json:"note"`
}

func HandleTransactionsPOST(env Env, store *ledger.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req transactionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			ginutil.BadRequest(c, "invalid request body")
			return
		}
		if req.Type != ledger.TypeIncome && req.Type != ledger.TypeExpense {
			ginutil.BadRequest(c, "transaction_type must be 'income' or 'expense'")
			return
		}
		if req.Amount <= 0 {
			ginutil.BadRequest(c, "amount must be positive")
			return
		}
		if req.Category == "" {
			req.Category = "other"
		}

		id, err := store.Create(c.Request.Context(), &ledger.Transaction{
			UserID:   ginutil.CurrentUserID(c),
			Type:     req.Type,
			Amount:   req.Amount,
			Category: req.Category,
			Note:     req.Note,
		})
		if err != nil {
			env.serverErr(c, err, "failed to create transaction")
			return
		}
		ginutil.OK(c, gin.H{"id": id})
	}
}
