package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const requestIDHeader = "X-Request-ID"

// requestID tags every request with an id, reusing the caller's when present.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("request_id", c.GetString("request_id")),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch {
		case c.Writer.Status() >= http.StatusInternalServerError:
			log.Error("request", fields...)
		case strings.HasPrefix(c.Request.URL.Path, "/static/"):
			log.Debug("request", fields...)
		default:
			log.Info("request", fields...)
		}
	}
}

// untracked paths are never recorded as page views.
var untracked = []string{"/static/", "/admin", "/favicon", "/healthz"}

// visitorTracking records page views with hashed IPs. Requests carrying
// DNT: 1 are not recorded.
func visitorTracking(v Visits) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if c.Request.Method != http.MethodGet || isUntracked(path) || c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		v.Track(c.ClientIP(), c.GetHeader("User-Agent"), path)
		c.Next()
	}
}

func isUntracked(path string) bool {
	for _, p := range untracked {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}
