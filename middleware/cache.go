package middleware

import "github.com/gin-gonic/gin"

// CacheControl sets the Cache-Control header on every response in the
// group. Per-user data goes out with "no-store".
func CacheControl(directive string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", directive)
		c.Next()
	}
}
