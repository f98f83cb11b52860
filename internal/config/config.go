package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ErrInvalid is returned when required startup configuration is absent or malformed.
var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	AppPort     string `env:"APP_PORT" envDefault:"3000"`
	Environment string `env:"APP_ENV" envDefault:"production"`

	GoogleClientID     string   `env:"CLIENT_ID,notEmpty"`
	GoogleClientSecret string   `env:"CLIENT_SECRET,notEmpty"`
	GoogleRedirectURL  string   `env:"GOOGLE_REDIRECT_URL" envDefault:"https://localhost:3000/auth/google/callback"`
	GoogleScopes       []string `env:"GOOGLE_SCOPES" envDefault:"email" envSeparator:","`

	// CookieKey1 signs new sessions; CookieKey2 only verifies.
	CookieKey1    string `env:"COOKIE_KEY_1"`
	CookieKey2    string `env:"COOKIE_KEY_2"`
	SecureCookies bool   `env:"SECURE_COOKIES" envDefault:"true"`

	TLSEnabled  bool   `env:"TLS_ENABLED" envDefault:"true"`
	TLSCertFile string `env:"TLS_CERT_FILE" envDefault:"cert.pem"`
	TLSKeyFile  string `env:"TLS_KEY_FILE" envDefault:"key.pem"`

	PublicDir string `env:"PUBLIC_DIR" envDefault:"public"`
}

// Load reads the configuration from the environment. It is called once at
// startup; the result is passed explicitly to every component.
func Load() (Config, error) {
	var cfg Config

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	if cfg.CookieKey1 == "" && cfg.CookieKey2 == "" {
		return Config{}, fmt.Errorf("%w: COOKIE_KEY_1 or COOKIE_KEY_2 must be set", ErrInvalid)
	}

	return cfg, nil
}

// CookieKeys returns the cookie signing keys, newest first.
func (c Config) CookieKeys() []string {
	return []string{c.CookieKey1, c.CookieKey2}
}
