package auth

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandshakeErrorsShareRoot(t *testing.T) {
	for _, err := range []error{ErrAccessDenied, ErrMalformedCallback, ErrExchangeFailed} {
		assert.ErrorIs(t, err, ErrHandshakeFailed)
	}

	wrapped := fmt.Errorf("%w: state mismatch", ErrMalformedCallback)
	assert.ErrorIs(t, wrapped, ErrHandshakeFailed)
	assert.False(t, errors.Is(wrapped, ErrAccessDenied))
}
