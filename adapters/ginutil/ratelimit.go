package ginutil

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Rate-limit bucket names.
const (
	RLAuthSession = "auth_session"
	RLAIChat      = "ai_chat"
	RLDefault     = "default"
)

// RateLimiter is satisfied by both the memory and Redis limiters.
type RateLimiter interface {
	AllowNamed(ctx context.Context, bucket, key string) (bool, error)
}

// AllowNamed checks the bucket for the current caller, keyed by user id
// when authenticated and client IP otherwise. A nil limiter allows
// everything; limiter errors fail open so a Redis outage cannot take the
// API down with it.
func AllowNamed(c *gin.Context, rl RateLimiter, bucket string) bool {
	if rl == nil {
		return true
	}
	key := c.ClientIP()
	if id := CurrentUserID(c); id > 0 {
		key = "u:" + strconv.FormatInt(id, 10)
	}
	ok, err := rl.AllowNamed(c.Request.Context(), bucket, key)
	if err != nil {
		return true
	}
	return ok
}
