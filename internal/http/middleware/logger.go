package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger prints one line per request with its request_id and matched route.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)

		route := c.FullPath()
		if route == "" {
			route = "-"
		}
		admin := "-"
		if a := AdminFromContext(c); a != nil {
			admin = a.Username
		}

		log.Printf("[HTTP] request_id=%s method=%s path=%s route=%s status=%d bytes=%d latency_ms=%.3f admin=%s ip=%s",
			GetRequestID(c),
			c.Request.Method,
			c.Request.URL.Path,
			route,
			c.Writer.Status(),
			c.Writer.Size(),
			float64(latency.Microseconds())/1000.0,
			admin,
			c.ClientIP(),
		)
		if len(c.Errors) > 0 {
			log.Printf("[HTTP] request_id=%s errors=%s", GetRequestID(c), c.Errors.String())
		}
	}
}
