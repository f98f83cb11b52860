package session

import (
	"context"

	"github.com/Debajyati/security-example/internal/auth"
)

// State is the read-only view of the session for one request.
type State struct {
	record Record
}

func NewState(rec Record) State {
	return State{record: rec}
}

func (s State) IsAuthenticated() bool {
	return !s.record.IsAnonymous()
}

// Principal returns the logged-in principal. Only the identifier is known;
// profile fields are not carried in the session.
func (s State) Principal() (auth.Principal, bool) {
	if !s.IsAuthenticated() {
		return auth.Principal{}, false
	}
	return auth.Principal{ID: s.record.PrincipalID}, true
}

func (s State) Record() Record {
	return s.record
}

// unexported, collision-proof context key
type stateContextKeyType struct{}

var stateKey = stateContextKeyType{}

// NewContext returns a copy of ctx carrying s.
func NewContext(ctx context.Context, s State) context.Context {
	return context.WithValue(ctx, stateKey, s)
}

// FromContext returns the session state stored in ctx, or the anonymous state.
func FromContext(ctx context.Context) State {
	s, _ := ctx.Value(stateKey).(State)
	return s
}
