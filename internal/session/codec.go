package session

import (
	"fmt"
	"time"

	"github.com/gorilla/securecookie"
)

const (
	CookieName = "session"
	DefaultTTL = 24 * time.Hour
)

// Record is the serialized session payload. The zero Record is anonymous.
type Record struct {
	PrincipalID string `json:"principalId,omitempty"`
}

// IsAnonymous reports whether the record carries no principal.
func (r Record) IsAnonymous() bool {
	return r.PrincipalID == ""
}

// Codec signs and verifies session cookie values. It holds one HMAC codec per
// key in the KeySet and is safe for concurrent use.
type Codec struct {
	codecs []securecookie.Codec
	ttl    time.Duration
}

func NewCodec(keys KeySet, ttl time.Duration) (*Codec, error) {
	if len(keys) == 0 {
		return nil, ErrNoSigningKey
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	codecs := make([]securecookie.Codec, 0, len(keys))
	for _, k := range keys {
		sc := securecookie.New(k, nil).
			MaxAge(int(ttl.Seconds())).
			SetSerializer(securecookie.JSONEncoder{})
		codecs = append(codecs, sc)
	}

	return &Codec{codecs: codecs, ttl: ttl}, nil
}

// TTL is the lifetime of a freshly encoded cookie.
func (c *Codec) TTL() time.Duration {
	return c.ttl
}

// Encode signs rec with the newest key and stamps the issue time.
func (c *Codec) Encode(rec Record) (string, error) {
	value, err := securecookie.EncodeMulti(CookieName, rec, c.codecs[0])
	if err != nil {
		return "", fmt.Errorf("session: failed to encode cookie: %w", err)
	}
	return value, nil
}

// Decode verifies value against every key, newest first. A bad signature,
// malformed payload or expired timestamp yields the anonymous Record.
func (c *Codec) Decode(value string) Record {
	if value == "" {
		return Record{}
	}

	var rec Record
	if err := securecookie.DecodeMulti(CookieName, value, &rec, c.codecs...); err != nil {
		return Record{}
	}
	return rec
}
