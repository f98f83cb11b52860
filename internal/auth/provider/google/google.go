package google

import (
	"context"
	"errors"
	"fmt"

	"github.com/Debajyati/security-example/internal/auth"
	"github.com/Debajyati/security-example/internal/logger"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

const (
	providerName = "google"
	issuerURL    = "https://accounts.google.com"
)

// DefaultScopes matches the login button of the public page: only the email scope.
var DefaultScopes = []string{"email"}

type Provider struct {
	oauthConfig  *oauth2.Config
	oidcProvider *oidc.Provider
	verifier     *oidc.IDTokenVerifier
}

// New discovers Google's endpoints and returns a provider for the
// authorization-code flow. Discovery is a network call and runs once at startup.
func New(
	ctx context.Context,
	clientID string,
	clientSecret string,
	redirectURL string,
	scopes []string,
) (*Provider, error) {
	return newProvider(ctx, issuerURL, clientID, clientSecret, redirectURL, scopes)
}

func newProvider(
	ctx context.Context,
	issuer string,
	clientID string,
	clientSecret string,
	redirectURL string,
	scopes []string,
) (*Provider, error) {

	if clientID == "" || clientSecret == "" || redirectURL == "" {
		return nil, errors.New("google oauth config missing required fields")
	}

	if len(scopes) == 0 {
		scopes = DefaultScopes
	}

	oidcProvider, err := oidc.NewProvider(ctx, issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to init google oidc provider: %w", err)
	}

	verifier := oidcProvider.Verifier(&oidc.Config{
		ClientID: clientID,
	})

	oauthCfg := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Endpoint:     oidcProvider.Endpoint(),
		Scopes:       scopes,
	}

	return &Provider{
		oauthConfig:  oauthCfg,
		oidcProvider: oidcProvider,
		verifier:     verifier,
	}, nil
}

// Name returns the provider identifier.
func (p *Provider) Name() string {
	return providerName
}

// AuthCodeURL builds the OAuth authorization URL with PKCE parameters.
func (p *Provider) AuthCodeURL(state string, codeChallenge string) string {
	return p.oauthConfig.AuthCodeURL(
		state,
		oauth2.AccessTypeOnline,
		oauth2.SetAuthURLParam("code_challenge", codeChallenge),
		oauth2.SetAuthURLParam("code_challenge_method", "S256"),
	)
}

type profile struct {
	Subject       string
	Email         string
	EmailVerified bool
	Source        string
}

func (p *Provider) ExchangeCode(
	ctx context.Context,
	code string,
	codeVerifier string,
) (*auth.Principal, error) {

	token, err := p.oauthConfig.Exchange(
		ctx,
		code,
		oauth2.SetAuthURLParam("code_verifier", codeVerifier),
	)
	if err != nil {
		return nil, fmt.Errorf("google token exchange failed: %w", err)
	}

	prof, err := p.profile(ctx, token)
	if err != nil {
		return nil, err
	}

	if prof.Subject == "" {
		return nil, errors.New("google profile missing subject")
	}

	logger.Info("google identity verified", map[string]any{
		"source":          prof.Source,
		"subject_present": true,
		"email_present":   prof.Email != "",
		"email_verified":  prof.EmailVerified,
		"expiry_unix":     token.Expiry.Unix(),
	})

	return &auth.Principal{
		ID:       prof.Subject,
		Provider: providerName,
		Email:    prof.Email,
	}, nil
}

// profile reads the identity from a verified id_token when the openid scope
// was granted, and from the userinfo endpoint otherwise.
func (p *Provider) profile(ctx context.Context, token *oauth2.Token) (profile, error) {
	if rawIDToken, ok := token.Extra("id_token").(string); ok && rawIDToken != "" {
		idToken, err := p.verifier.Verify(ctx, rawIDToken)
		if err != nil {
			return profile{}, fmt.Errorf("google id_token verification failed: %w", err)
		}

		var claims struct {
			Subject       string `json:"sub"`
			Email         string `json:"email"`
			EmailVerified bool   `json:"email_verified"`
		}
		if err := idToken.Claims(&claims); err != nil {
			return profile{}, fmt.Errorf("google id_token claims parse failed: %w", err)
		}

		return profile{
			Subject:       claims.Subject,
			Email:         claims.Email,
			EmailVerified: claims.EmailVerified,
			Source:        "id_token",
		}, nil
	}

	info, err := p.oidcProvider.UserInfo(ctx, oauth2.StaticTokenSource(token))
	if err != nil {
		return profile{}, fmt.Errorf("google userinfo request failed: %w", err)
	}

	return profile{
		Subject:       info.Subject,
		Email:         info.Email,
		EmailVerified: info.EmailVerified,
		Source:        "userinfo",
	}, nil
}
