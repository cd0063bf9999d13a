package authgin

import (
	"html/template"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/balansai/miniapp-backend/core"
)

// PagePaths are the routes that all serve the single-page shell.
var PagePaths = []string{"/", "/warehouse", "/reports", "/employees", "/ai-chat"}

var redirectTmpl = template.Must(template.New("redirect").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><script src="https://telegram.org/js/telegram-web-app.js"></script></head>
<body>
<script>
  var target = {{.URL}};
  if (window.Telegram && Telegram.WebApp && Telegram.WebApp.openTelegramLink) {
    try { Telegram.WebApp.openTelegramLink(target); } catch (e) { window.location.replace(target); }
  } else {
    window.location.replace(target);
  }
</script>
</body>
</html>`))

// PageHandler serves the application shell. A caller presenting a payload
// that fails verification (production), or one without an active plan, gets
// a bootstrap page that redirects client-side instead of a JSON error.
// Callers with no payload at all still receive the shell; the app resolves
// its plan state through /api/check-plan once loaded.
func PageHandler(svc *core.Service, staticDir string, log logrus.FieldLogger) gin.HandlerFunc {
	shell := filepath.Join(staticDir, "index.html")
	return func(c *gin.Context) {
		initData, bearer := extractCredentials(c)
		if initData != "" || bearer != "" {
			sess, err := svc.EstablishSession(c.Request.Context(), initData, bearer, c.ClientIP())
			if err != nil {
				log.WithError(err).Debug("page request with invalid payload")
				serveRedirect(c, svc.UpgradeURL())
				return
			}
			if d := svc.CheckEntitlement(c.Request.Context(), sess.Identity.UserID); !d.Active {
				serveRedirect(c, svc.UpgradeURL())
				return
			}
		}

		c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
		c.File(shell)
	}
}

func serveRedirect(c *gin.Context, url string) {
	c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
	c.Status(http.StatusOK)
	c.Header("Content-Type", "text/html; charset=utf-8")
	_ = redirectTmpl.Execute(c.Writer, gin.H{"URL": url})
	c.Abort()
}
