package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Debajyati/security-example/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestGuard(t *testing.T) {
	deny := Guard(session.NewState(session.Record{}))
	assert.False(t, deny.Allowed)
	assert.Equal(t, "You Must Log In!", deny.Reason)

	allow := Guard(session.NewState(session.Record{PrincipalID: "108234"}))
	assert.True(t, allow.Allowed)
	assert.Empty(t, allow.Reason)
}

func TestRequireAuth(t *testing.T) {
	t.Run("anonymous request returns 401", func(t *testing.T) {
		handler := RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not be called")
		}))

		req := httptest.NewRequest(http.MethodGet, "/secret", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
		assert.Equal(t, `{"error":"You Must Log In!"}`, w.Body.String())
	})

	t.Run("authenticated request passes through", func(t *testing.T) {
		called := false
		handler := RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodGet, "/secret", nil)
		ctx := session.NewContext(req.Context(), session.NewState(session.Record{PrincipalID: "42"}))
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req.WithContext(ctx))

		assert.True(t, called)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

type staticLoader struct {
	state session.State
}

func (l staticLoader) Load(*http.Request) session.State {
	return l.state
}

func newGuardedRouter(state session.State) *gin.Engine {
	r := gin.New()
	r.Use(LoadSession(staticLoader{state: state}))

	r.GET("/secret", GinRequireAuth(), func(c *gin.Context) {
		p, _ := session.FromContext(c.Request.Context()).Principal()
		c.String(http.StatusOK, "hello "+p.ID)
	})
	return r
}

func TestGinRequireAuth(t *testing.T) {
	t.Run("denies anonymous", func(t *testing.T) {
		r := newGuardedRouter(session.NewState(session.Record{}))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/secret", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, `{"error":"You Must Log In!"}`, w.Body.String())
	})

	t.Run("allows authenticated", func(t *testing.T) {
		r := newGuardedRouter(session.NewState(session.Record{PrincipalID: "108234"}))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/secret", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "hello 108234", w.Body.String())
	})
}
