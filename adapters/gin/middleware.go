// Package authgin adapts the core service onto gin: session and
// entitlement middleware, request logging, and router assembly.
package authgin

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/balansai/miniapp-backend/adapters/ginutil"
	"github.com/balansai/miniapp-backend/core"
	"github.com/balansai/miniapp-backend/lang"
)

// InitDataHeader carries the signed payload; the query parameter is a
// fallback for clients that cannot set headers.
const (
	InitDataHeader = "X-Telegram-Init-Data"
	InitDataQuery  = "initData"
)

func extractCredentials(c *gin.Context) (initData, bearer string) {
	initData = c.GetHeader(InitDataHeader)
	if initData == "" {
		initData = c.Query(InitDataQuery)
	}
	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
		bearer = strings.TrimPrefix(h, "Bearer ")
	}
	return initData, bearer
}

// SessionMiddleware authenticates every API request: signed initData or a
// session token, with the development fallback applied inside the service.
// On success the identity is attached to the request and the caller's
// language to the request context.
func SessionMiddleware(svc *core.Service, log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		initData, bearer := extractCredentials(c)

		sess, err := svc.EstablishSession(c.Request.Context(), initData, bearer, c.ClientIP())
		if err != nil {
			log.WithError(err).WithField("path", c.Request.URL.Path).Debug("authentication rejected")
			ginutil.Unauthorized(c, "telegram authentication required")
			return
		}

		ginutil.SetCurrentUser(c, sess.Identity, sess.Method)
		c.Request = c.Request.WithContext(
			lang.WithLanguage(c.Request.Context(), lang.Normalize(sess.Identity.LanguageCode)))
		c.Next()
	}
}

// RequireEntitlement rejects callers without an active business plan. The
// plan state is read fresh from storage on every request.
func RequireEntitlement(svc *core.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		decision := svc.CheckEntitlement(c.Request.Context(), ginutil.CurrentUserID(c))
		if !decision.Active {
			ginutil.Forbidden(c, "business plan required", svc.UpgradeURL())
			return
		}
		c.Next()
	}
}
