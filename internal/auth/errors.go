package auth

import (
	"errors"
	"fmt"
)

// ErrHandshakeFailed is the root of every delegated login failure. Callers
// match it with errors.Is and never expose the wrapped detail to clients.
var ErrHandshakeFailed = errors.New("handshake failed")

var (
	ErrAccessDenied      = fmt.Errorf("%w: provider denied access", ErrHandshakeFailed)
	ErrMalformedCallback = fmt.Errorf("%w: malformed callback", ErrHandshakeFailed)
	ErrExchangeFailed    = fmt.Errorf("%w: code exchange failed", ErrHandshakeFailed)
)
