package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"finance-tracker-api/utils"
)

// RequestLogger logs one line per request with status, latency and the
// (masked) identity of the caller when known.
func RequestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		caller := "anonymous"
		if user := GetCurrentUser(c); user != nil {
			caller = utils.MaskEmail(user.Email)
		}

		entry := logger.WithFields(logrus.Fields{
			"status":    status,
			"latency":   latency.String(),
			"client_ip": c.ClientIP(),
			"method":    c.Request.Method,
			"path":      path,
			"user":      caller,
		})

		switch {
		case status >= 500:
			entry.Error("Server error")
		case status >= 400:
			entry.Warn("Client error")
		default:
			entry.Info("Request processed")
		}
	}
}
