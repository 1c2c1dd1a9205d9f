package site

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nivandosoares/portfolio/pkg/observability"
)

// requestLogger logs one line per request through slog.
func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		level := slog.LevelInfo
		switch {
		case status >= http.StatusInternalServerError:
			level = slog.LevelError
		case status >= http.StatusBadRequest:
			level = slog.LevelWarn
		}

		logger.LogAttrs(c.Request.Context(), level, "http request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", status),
			slog.Duration("duration", time.Since(start)),
			slog.Int("bytes", c.Writer.Size()),
		)
	}
}

var untrackedPrefixes = []string{"/static/", "/api/", "/chart/", "/metrics", "/healthz", "/favicon", "/privacy"}

// pageViewMiddleware counts successful page views per route. Assets and
// machine endpoints are skipped, and so is anyone sending Do Not Track.
func pageViewMiddleware(metrics *observability.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, prefix := range untrackedPrefixes {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}

		if c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		c.Next()

		route := c.FullPath()
		if c.Request.Method != http.MethodGet || route == "" || c.Writer.Status() != http.StatusOK {
			return
		}
		metrics.PageView(route)
	}
}
