package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/balansai/miniapp-backend/adapters/ginutil"
	"github.com/balansai/miniapp-backend/forecast"
	"github.com/balansai/miniapp-backend/ledger"
)

// HandleReportsForecastGET projects next month's income and expenses from
// up to six months of history.
func HandleReportsForecastGET(env Env, txs *ledger.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		history, err := txs.MonthlyAggregates(c.Request.Context(), ginutil.CurrentUserID(c), 6)
		if err != nil {
			env.serverErr(c, err, "failed to load monthly history")
			return
		}
		ginutil.OK(c, forecast.Calculate(history))
	}
}
