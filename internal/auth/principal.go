package auth

// Principal is the identity behind an authenticated session.
// ID is the only trusted field; Provider and Email are informational
// and are never persisted in the session.
type Principal struct {
	ID       string // provider-scoped stable user identifier (sub)
	Provider string // e.g. "google"
	Email    string
}
