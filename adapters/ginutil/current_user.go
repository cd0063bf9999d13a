package ginutil

import (
	"github.com/gin-gonic/gin"

	"github.com/balansai/miniapp-backend/telegramauth"
)

// Context keys set by the session middleware.
const (
	KeyUserID   = "auth.user_id"
	KeyIdentity = "auth.identity"
	KeyMethod   = "auth.method"
)

// SetCurrentUser attaches the established identity to the request.
func SetCurrentUser(c *gin.Context, ident telegramauth.Identity, method string) {
	c.Set(KeyUserID, ident.UserID)
	c.Set(KeyIdentity, ident)
	c.Set(KeyMethod, method)
}

// CurrentUser returns the identity established for this request. The
// second return is false on routes that run without the session
// middleware.
func CurrentUser(c *gin.Context) (telegramauth.Identity, bool) {
	v, ok := c.Get(KeyIdentity)
	if !ok {
		return telegramauth.Identity{}, false
	}
	ident, ok := v.(telegramauth.Identity)
	return ident, ok && ident.UserID > 0
}

// CurrentUserID is a shortcut for handlers that only need the id.
func CurrentUserID(c *gin.Context) int64 {
	ident, _ := CurrentUser(c)
	return ident.UserID
}
