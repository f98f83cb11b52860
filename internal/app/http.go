package app

import (
	"context"
	"net/http"
	"path/filepath"

	"github.com/Debajyati/security-example/internal/auth/handler"
	"github.com/Debajyati/security-example/internal/auth/handshake"
	"github.com/Debajyati/security-example/internal/auth/provider/google"
	"github.com/Debajyati/security-example/internal/config"
	"github.com/Debajyati/security-example/internal/middleware"
	"github.com/Debajyati/security-example/internal/session"

	"github.com/gin-gonic/gin"
)

const secretMessage = "Your Personal Secret value is 42!"

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, error) {

	// ----------------------------
	// Dependencies
	// ----------------------------

	keys, err := session.NewKeySet(cfg.CookieKeys()...)
	if err != nil {
		return nil, err
	}

	codec, err := session.NewCodec(keys, session.DefaultTTL)
	if err != nil {
		return nil, err
	}

	sessionStore := session.NewCookieStore(codec, session.CookieOptions{
		Secure:   cfg.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	googleProvider, err := google.New(
		ctx,
		cfg.GoogleClientID,
		cfg.GoogleClientSecret,
		cfg.GoogleRedirectURL,
		cfg.GoogleScopes,
	)
	if err != nil {
		return nil, err
	}

	if cfg.Environment == "development" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	return newRouter(cfg, handshake.New(googleProvider), sessionStore), nil
}

func newRouter(
	cfg config.Config,
	hs handler.Handshaker,
	sessionStore *session.CookieStore,
) *gin.Engine {

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.SecurityHeaders(),
		middleware.LoadSession(sessionStore),
	)

	// ----------------------------
	// Public Routes
	// ----------------------------

	handler.NewHandler(hs, sessionStore, cfg.SecureCookies).RegisterRoutes(router)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	indexFile := filepath.Join(cfg.PublicDir, "index.html")
	router.GET("/", func(c *gin.Context) {
		c.File(indexFile)
	})

	// ----------------------------
	// Protected Routes
	// ----------------------------

	protected := router.Group("/")
	protected.Use(middleware.GinRequireAuth())

	protected.GET("/secret", func(c *gin.Context) {
		c.String(http.StatusOK, secretMessage)
	})

	return router
}
