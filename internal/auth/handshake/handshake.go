// Package handshake drives the delegated authorization-code flow as two
// explicit steps: Start produces the redirect to the provider, Complete
// turns the provider's callback into a principal or a handshake error.
//
// The per-attempt state (CSRF state and PKCE verifier) is returned to the
// caller, which carries it client-side across the redirect. Nothing is
// kept in memory between the two steps.
package handshake

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"net/url"

	"github.com/Debajyati/security-example/internal/auth"
	"github.com/Debajyati/security-example/internal/auth/provider"
	"github.com/Debajyati/security-example/internal/utils"
)

const tokenBytes = 32

// Pending is the state of a single login attempt between Start and Complete.
type Pending struct {
	RedirectURL string
	State       string
	Verifier    string
}

// Callback is what the provider sent back, plus the attempt state the
// client returned with it.
type Callback struct {
	Params        url.Values
	ExpectedState string
	Verifier      string
}

type Adapter struct {
	provider provider.OAuthProvider
}

func New(p provider.OAuthProvider) *Adapter {
	return &Adapter{provider: p}
}

// Provider returns the name of the underlying identity provider.
func (a *Adapter) Provider() string {
	return a.provider.Name()
}

// Start begins a login attempt. It always succeeds.
func (a *Adapter) Start() Pending {
	state := utils.RandomString(tokenBytes)
	verifier := utils.RandomString(tokenBytes)

	return Pending{
		RedirectURL: a.provider.AuthCodeURL(state, challengeFor(verifier)),
		State:       state,
		Verifier:    verifier,
	}
}

// Complete validates the callback and exchanges the authorization code.
// Every error wraps auth.ErrHandshakeFailed.
func (a *Adapter) Complete(ctx context.Context, cb Callback) (*auth.Principal, error) {
	if reason := cb.Params.Get("error"); reason != "" {
		return nil, fmt.Errorf("%w: %s", auth.ErrAccessDenied, reason)
	}

	code := cb.Params.Get("code")
	if code == "" {
		return nil, fmt.Errorf("%w: missing code", auth.ErrMalformedCallback)
	}

	state := cb.Params.Get("state")
	if state == "" || cb.ExpectedState == "" {
		return nil, fmt.Errorf("%w: missing state", auth.ErrMalformedCallback)
	}
	if subtle.ConstantTimeCompare([]byte(state), []byte(cb.ExpectedState)) != 1 {
		return nil, fmt.Errorf("%w: state mismatch", auth.ErrMalformedCallback)
	}

	if cb.Verifier == "" {
		return nil, fmt.Errorf("%w: missing pkce verifier", auth.ErrMalformedCallback)
	}

	principal, err := a.provider.ExchangeCode(ctx, code, cb.Verifier)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", auth.ErrExchangeFailed, err)
	}

	if principal == nil || principal.ID == "" {
		return nil, fmt.Errorf("%w: provider returned no identifier", auth.ErrMalformedCallback)
	}

	return principal, nil
}

func challengeFor(verifier string) string {
	hash := sha256.Sum256([]byte(verifier))
	return base64.RawURLEncoding.EncodeToString(hash[:])
}
