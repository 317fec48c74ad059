package transport

import (
	"net/http"

	"minimalbites/internal/kv"
	"minimalbites/internal/middleware"
	"minimalbites/internal/session"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// LoginRequest represents the login form payload
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthHandler handles HTTP requests for the mock login flow. Session
// state lives in the visitor's cookies; each request gets a
// request-scoped session store over its cookie jar.
type AuthHandler struct {
	logger *zap.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(logger *zap.Logger) *AuthHandler {
	return &AuthHandler{logger: logger}
}

// RegisterRoutes registers all auth routes. The optional limiter wraps
// the login endpoint.
func (h *AuthHandler) RegisterRoutes(r chi.Router, limiter func(http.Handler) http.Handler) {
	r.Route("/api/auth", func(r chi.Router) {
		if limiter != nil {
			r.With(limiter).Post("/login", h.Login)
		} else {
			r.Post("/login", h.Login)
		}
		r.Post("/logout", h.Logout)
		r.Get("/me", h.Me)
	})
}

// Login checks the submitted credentials and on success sets the auth
// flag and profile cookies, both with a one-day expiry
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Login validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sess := session.New(kv.NewCookieJar(w, r))
	if !sess.Login(r.Context(), req.Email, req.Password) {
		h.logger.Debug("Login failed", zap.String("email", req.Email))
		middleware.RespondWithError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}

	h.logger.Info("User logged in", zap.String("email", req.Email))
	middleware.RespondWithJSON(w, http.StatusOK, sess.CurrentUser(r.Context()))
}

// Logout expires both session cookies immediately
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sess := session.New(kv.NewCookieJar(w, r))
	sess.Logout(r.Context())

	h.logger.Info("User logged out")
	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "logged out successfully"})
}

// Me returns the current user's profile
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	sess := session.New(kv.NewCookieJar(w, r))

	profile := sess.CurrentUser(r.Context())
	if profile == nil {
		middleware.RespondWithError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, profile)
}
