// Package ginutil holds the response envelope helpers and rate-limit
// plumbing shared by every handler.
package ginutil

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK writes the uniform success envelope.
func OK(c *gin.Context, data any) {
	if data == nil {
		c.JSON(http.StatusOK, gin.H{"success": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

// BadRequest reports a validation failure with a specific message.
func BadRequest(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"success": false, "error": msg})
}

// Unauthorized reports a missing or invalid credential.
func Unauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
}

// Forbidden reports an authenticated caller without an active plan, with
// the upgrade redirect target.
func Forbidden(c *gin.Context, msg, redirect string) {
	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": msg, "redirect": redirect})
}

// ServerErr reports a storage or internal failure. The message must stay
// generic; details belong in the server log only.
func ServerErr(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "error": msg})
}

// TooMany reports a rate-limit rejection.
func TooMany(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too_many_requests"})
}
