package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Debajyati/security-example/internal/config"
)

const (
	readTimeout  = 15 * time.Second
	writeTimeout = 30 * time.Second
	idleTimeout  = 120 * time.Second
)

type App struct {
	httpServer *http.Server
	cfg        config.Config
}

func New(ctx context.Context, cfg config.Config) (*App, error) {
	router, err := setupHTTP(ctx, cfg)
	if err != nil {
		return nil, err
	}

	server := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           router,
		ReadHeaderTimeout: readTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}

	return &App{
		httpServer: server,
		cfg:        cfg,
	}, nil
}

// Run serves until Shutdown is called. It returns nil after a clean shutdown.
func (a *App) Run() error {
	var err error
	if a.cfg.TLSEnabled {
		err = a.httpServer.ListenAndServeTLS(a.cfg.TLSCertFile, a.cfg.TLSKeyFile)
	} else {
		err = a.httpServer.ListenAndServe()
	}

	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (a *App) Shutdown(ctx context.Context) error {
	return a.httpServer.Shutdown(ctx)
}
