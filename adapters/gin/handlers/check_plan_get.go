package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/balansai/miniapp-backend/adapters/ginutil"
	"github.com/balansai/miniapp-backend/core"
)

// HandleCheckPlanGET reports the caller's plan state. Reachable without an
// active entitlement; this is the endpoint the shell polls to decide
// whether to show the upgrade screen.
func HandleCheckPlanGET(svc *core.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		decision := svc.CheckEntitlement(c.Request.Context(), ginutil.CurrentUserID(c))

		var redirect *string
		if !decision.Active {
			u := svc.UpgradeURL()
			redirect = &u
		}
		c.JSON(http.StatusOK, gin.H{
			"success":           true,
			"has_business_plan": decision.Active,
			"reason":            decision.Reason,
			"redirect":          redirect,
		})
	}
}
