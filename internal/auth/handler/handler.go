package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/Debajyati/security-example/internal/auth"
	"github.com/Debajyati/security-example/internal/auth/handshake"
	"github.com/Debajyati/security-example/internal/logger"
	"github.com/Debajyati/security-example/internal/middleware"
	"github.com/Debajyati/security-example/internal/session"

	"github.com/gin-gonic/gin"
)

const (
	homePath    = "/"
	failurePath = "/failure"

	failureMessage = "Failed to log in!"
)

// Handshaker runs the delegated login flow.
type Handshaker interface {
	Provider() string
	Start() handshake.Pending
	Complete(ctx context.Context, cb handshake.Callback) (*auth.Principal, error)
}

// SessionWriter replaces or removes the session carried by the response.
type SessionWriter interface {
	Save(w http.ResponseWriter, rec session.Record) error
	Clear(w http.ResponseWriter) error
}

type Handler struct {
	handshake     Handshaker
	sessions      SessionWriter
	secureCookies bool
}

func NewHandler(
	hs Handshaker,
	sessions SessionWriter,
	secureCookies bool,
) *Handler {
	return &Handler{
		handshake:     hs,
		sessions:      sessions,
		secureCookies: secureCookies,
	}
}

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	provider := h.handshake.Provider()

	r.GET("/auth/"+provider, h.login)
	r.GET("/auth/"+provider+"/callback", h.callback)
	r.GET("/auth/logout", h.logout)
	r.GET(failurePath, h.failure)
}

func (h *Handler) login(c *gin.Context) {
	pending := h.handshake.Start()

	setStateCookie(c, pending.State, h.secureCookies)
	setPKCECookie(c, pending.Verifier, h.secureCookies)

	c.Redirect(http.StatusFound, pending.RedirectURL)
}

func (h *Handler) callback(c *gin.Context) {
	expectedState := getState(c)
	verifier := getPKCEVerifier(c)

	// single use, whatever the outcome
	clearStateCookie(c, h.secureCookies)
	clearPKCECookie(c, h.secureCookies)

	principal, err := h.handshake.Complete(c.Request.Context(), handshake.Callback{
		Params:        c.Request.URL.Query(),
		ExpectedState: expectedState,
		Verifier:      verifier,
	})
	if err != nil {
		fields := map[string]any{
			"provider":   h.handshake.Provider(),
			"error":      err.Error(),
			"request_id": middleware.RequestIDFromContext(c.Request.Context()),
		}
		if errors.Is(err, auth.ErrAccessDenied) {
			fields["denied"] = true
		}
		logger.Warn("login handshake failed", fields)

		c.Redirect(http.StatusFound, failurePath)
		return
	}

	if err := h.sessions.Save(c.Writer, session.Record{PrincipalID: principal.ID}); err != nil {
		logger.Error("failed to create session", map[string]any{
			"error": err.Error(),
		})
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error": "failed to create session",
		})
		return
	}

	logger.Info("login succeeded", map[string]any{
		"provider":      principal.Provider,
		"principal_id":  principal.ID,
		"email_present": principal.Email != "",
		"client_ip":     c.ClientIP(),
	})

	c.Redirect(http.StatusFound, homePath)
}

func (h *Handler) logout(c *gin.Context) {
	state := session.FromContext(c.Request.Context())

	// Clear always emits the removal cookie before reporting a failure.
	if err := h.sessions.Clear(c.Writer); err != nil {
		logger.Error("failed to clear session", map[string]any{
			"error": err.Error(),
		})
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error": "failed to log out",
		})
		return
	}

	if p, ok := state.Principal(); ok {
		logger.Info("logout", map[string]any{
			"principal_id": p.ID,
			"client_ip":    c.ClientIP(),
		})
	}

	c.Redirect(http.StatusFound, homePath)
}

func (h *Handler) failure(c *gin.Context) {
	c.String(http.StatusOK, failureMessage)
}
