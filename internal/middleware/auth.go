package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/Debajyati/security-example/internal/session"
)

const loginRequiredMessage = "You Must Log In!"

// Decision is the outcome of the access guard.
type Decision struct {
	Allowed bool
	Reason  string
}

// Guard allows authenticated sessions and denies everything else. It keeps
// no state, so every request is judged on its own session.
func Guard(state session.State) Decision {
	if !state.IsAuthenticated() {
		return Decision{Reason: loginRequiredMessage}
	}
	return Decision{Allowed: true}
}

// RequireAuth rejects requests whose session is anonymous with a 401 JSON
// body. The session must already be in the request context (see LoadSession).
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		decision := Guard(session.FromContext(r.Context()))
		if !decision.Allowed {
			writeJSONError(w, http.StatusUnauthorized, decision.Reason)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	body, _ := json.Marshal(map[string]string{"error": msg})

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
