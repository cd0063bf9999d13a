package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/balansai/miniapp-backend/adapters/ginutil"
	"github.com/balansai/miniapp-backend/core"
)

// HandleAuthSessionPOST exchanges a verified payload for a short-lived
// bearer token so the client does not resend initData on every call.
func HandleAuthSessionPOST(env Env, svc *core.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !ginutil.AllowNamed(c, env.RL, ginutil.RLAuthSession) {
			ginutil.TooMany(c)
			return
		}

		ident, ok := ginutil.CurrentUser(c)
		if !ok {
			ginutil.Unauthorized(c, "telegram authentication required")
			return
		}

		token, ttl, err := svc.IssueSessionToken(c.Request.Context(), ident)
		if err != nil {
			env.serverErr(c, err, "failed to issue session token")
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success":    true,
			"token":      token,
			"expires_in": int64(ttl.Seconds()),
		})
	}
}
