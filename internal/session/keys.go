package session

import "errors"

// ErrNoSigningKey is returned when no usable cookie signing key is configured.
var ErrNoSigningKey = errors.New("session: at least one non-empty signing key is required")

// KeySet is an ordered list of cookie signing keys, newest first.
// The first key signs new cookies; every key verifies existing ones,
// so a key can be rotated out without invalidating live sessions.
type KeySet [][]byte

// NewKeySet builds a KeySet from keys given newest first. Empty keys are skipped.
func NewKeySet(keys ...string) (KeySet, error) {
	set := make(KeySet, 0, len(keys))
	for _, k := range keys {
		if k == "" {
			continue
		}
		set = append(set, []byte(k))
	}

	if len(set) == 0 {
		return nil, ErrNoSigningKey
	}

	return set, nil
}
