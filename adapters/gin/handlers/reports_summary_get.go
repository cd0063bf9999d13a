package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/balansai/miniapp-backend/adapters/ginutil"
	"github.com/balansai/miniapp-backend/ledger"
	"github.com/balansai/miniapp-backend/warehouse"
)

// HandleReportsSummaryGET combines period totals, top expense categories
// and stock statistics into one report payload.
func HandleReportsSummaryGET(env Env, txs *ledger.Store, wh *warehouse.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := ginutil.CurrentUserID(c)
		period := c.DefaultQuery("period", "month")

		summary, err := txs.PeriodSummary(c.Request.Context(), userID, period)
		if err != nil {
			env.serverErr(c, err, "failed to build summary")
			return
		}
		topCategories, err := txs.TopExpenseCategories(c.Request.Context(), userID, period)
		if err != nil {
			env.serverErr(c, err, "failed to load top categories")
			return
		}
		stats, err := wh.StockStats(c.Request.Context(), userID)
		if err != nil {
			env.serverErr(c, err, "failed to load warehouse stats")
			return
		}

		ginutil.OK(c, gin.H{
			"summary":         summary,
			"top_categories":  topCategories,
			"warehouse_stats": stats,
		})
	}
}
