package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const RequestIDHeader = "X-Request-ID"

// RequestID propagates an incoming X-Request-ID or assigns a new one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("requestID", id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// Logging logs method, path, status and duration of each request. Errors
// attached to the context by handlers are logged at error level, and a
// response nothing was written to becomes a 500.
func Logging(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		if len(c.Errors) > 0 && !c.Writer.Written() {
			c.AbortWithStatus(http.StatusInternalServerError)
		}

		entry := logger.WithFields(logrus.Fields{
			"method":     method,
			"path":       path,
			"status":     c.Writer.Status(),
			"duration":   time.Since(start).String(),
			"remote":     c.ClientIP(),
			"request_id": c.GetString("requestID"),
		})

		if len(c.Errors) > 0 {
			entry.WithField("errors", c.Errors.String()).Error("http request failed")
			return
		}
		entry.Info("http request")
	}
}
