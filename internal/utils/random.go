package utils

import (
	"crypto/rand"
	"encoding/base64"
)

// RandomString returns a URL-safe token built from n random bytes.
func RandomString(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return base64.RawURLEncoding.EncodeToString(b)
}
