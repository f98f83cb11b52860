package provider

import (
	"context"

	"github.com/Debajyati/security-example/internal/auth"
)

// OAuthProvider defines the contract of the external identity provider.
// Implementations return identity facts only and must not touch sessions.
type OAuthProvider interface {
	// Name returns the provider identifier (e.g. "google").
	Name() string

	// AuthCodeURL returns the authorization endpoint URL with the client id,
	// scopes, state and S256 PKCE challenge embedded.
	AuthCodeURL(state string, codeChallenge string) string

	// ExchangeCode redeems the authorization code and returns the principal
	// asserted by the provider.
	ExchangeCode(
		ctx context.Context,
		code string,
		codeVerifier string,
	) (*auth.Principal, error)
}
