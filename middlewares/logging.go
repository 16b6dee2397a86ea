// Simple structured request logging to stdout.

package middlewares

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLogger prints method, path, status and duration for each request.
// Business-level audit events go to the Redis logger instead; this line
// is the local access log.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path // keep it; handlers may rewrite the URL
		c.Next()
		log.Printf("%s %s %d %s",
			c.Request.Method,
			path,
			c.Writer.Status(),
			time.Since(start))
	}
}
