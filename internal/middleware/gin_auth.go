package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GinRequireAuth adapts the net/http RequireAuth middleware to Gin.
func GinRequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed := false

		// Bridge handler to allow net/http middleware execution
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			allowed = true
			c.Request = r
		})

		RequireAuth(next).ServeHTTP(c.Writer, c.Request)

		// The guard already wrote the 401; stop the Gin chain.
		if !allowed {
			c.Abort()
			return
		}

		c.Next()
	}
}
