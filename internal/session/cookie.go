package session

import (
	"net/http"
	"time"
)

// CookieOptions defines how session cookies are issued.
type CookieOptions struct {
	Path     string
	HttpOnly bool
	Secure   bool
	SameSite http.SameSite
	Domain   string
}

// normalize applies safe defaults without breaking callers
func (o CookieOptions) normalize() CookieOptions {
	if o.Path == "" {
		o.Path = "/"
	}
	if !o.HttpOnly {
		o.HttpOnly = true
	}
	if o.SameSite == 0 {
		o.SameSite = http.SameSiteLaxMode
	}
	return o
}

// CookieStore keeps the whole session in a signed cookie. It has no
// server-side state; Load, Save and Clear only touch the request and response.
type CookieStore struct {
	codec *Codec
	opts  CookieOptions
	now   func() time.Time
}

func NewCookieStore(codec *Codec, opts CookieOptions) *CookieStore {
	return &CookieStore{
		codec: codec,
		opts:  opts.normalize(),
		now:   time.Now,
	}
}

// Load derives the session state from the request cookie.
func (s *CookieStore) Load(r *http.Request) State {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return State{}
	}
	return NewState(s.codec.Decode(cookie.Value))
}

// Save replaces the session with rec.
func (s *CookieStore) Save(w http.ResponseWriter, rec Record) error {
	value, err := s.codec.Encode(rec)
	if err != nil {
		return err
	}

	ttl := s.codec.TTL()

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     s.opts.Path,
		Domain:   s.opts.Domain,
		Expires:  s.now().Add(ttl),
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: s.opts.HttpOnly,
		Secure:   s.opts.Secure,
		SameSite: s.opts.SameSite,
	})

	return nil
}

// Clear removes the session cookie from the client.
func (s *CookieStore) Clear(w http.ResponseWriter) error {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     s.opts.Path,
		Domain:   s.opts.Domain,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: s.opts.HttpOnly,
		Secure:   s.opts.Secure,
		SameSite: s.opts.SameSite,
	})
	return nil
}
