// Package handlers holds one file per API endpoint.
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/balansai/miniapp-backend/adapters/ginutil"
)

// Env carries the cross-cutting pieces every handler needs.
type Env struct {
	Log   logrus.FieldLogger
	Debug bool
	RL    ginutil.RateLimiter
}

// serverErr logs the storage failure with detail and answers with a
// generic message; raw error text is only exposed with the debug flag.
func (e Env) serverErr(c *gin.Context, err error, op string) {
	e.Log.WithError(err).WithField("request_id", c.GetString("request_id")).Error(op)
	if e.Debug {
		ginutil.ServerErr(c, err.Error())
		return
	}
	ginutil.ServerErr(c, "internal server error")
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		ginutil.BadRequest(c, "invalid "+name)
		return 0, false
	}
	return id, true
}
