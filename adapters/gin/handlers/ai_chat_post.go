package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/balansai/miniapp-backend/adapters/ginutil"
	"github.com/balansai/miniapp-backend/aichat"
	"github.com/balansai/miniapp-backend/lang"
)

type chatRequest struct {
	Message string `json:"message"`
}

// HandleAIChatPOST answers with the scripted assistant. Rate-limited per
// caller since the endpoint is cheap to spam from the chat screen.
func HandleAIChatPOST(env Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !ginutil.AllowNamed(c, env.RL, ginutil.RLAIChat) {
			ginutil.TooMany(c)
			return
		}

		var req chatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			ginutil.BadRequest(c, "invalid request body")
			return
		}
		if strings.TrimSpace(req.Message) == "" {
			ginutil.BadRequest(c, "message is required")
			return
		}

		reply := aichat.Reply(lang.FromContext(c.Request.Context()), req.Message)
		ginutil.OK(c, gin.H{"response": reply})
	}
}
