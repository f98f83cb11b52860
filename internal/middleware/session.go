package middleware

import (
	"net/http"

	"github.com/Debajyati/security-example/internal/session"

	"github.com/gin-gonic/gin"
)

// SessionLoader derives the session state from an incoming request.
type SessionLoader interface {
	Load(r *http.Request) session.State
}

// LoadSession decodes the session cookie once per request and stores the
// resulting state in the request context.
func LoadSession(loader SessionLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		state := loader.Load(c.Request)
		c.Request = c.Request.WithContext(session.NewContext(c.Request.Context(), state))
		c.Next()
	}
}
