package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mstoliarov/authgate/internal/common"
	"github.com/mstoliarov/authgate/internal/logging"
	"github.com/mstoliarov/authgate/internal/server/metrics"
	"github.com/mstoliarov/authgate/internal/server/users"
)

// CookieConfig describes the session cookie written on login and cleared on
// logout.
type CookieConfig struct {
	Name   string
	Path   string
	Domain string
	Secure bool
	MaxAge int // seconds
}

// AuthHandler serves the authentication endpoints.
type AuthHandler struct {
	service   *users.Service
	logger    logging.Logger
	collector *metrics.Collector
	cookie    CookieConfig
}

func NewAuthHandler(service *users.Service, logger logging.Logger, collector *metrics.Collector, cookie CookieConfig) *AuthHandler {
	return &AuthHandler{service: service, logger: logger, collector: collector, cookie: cookie}
}

// Register creates a new user.
// POST /register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req users.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.collector.RecordRegistration(metrics.ResultRejected)
		respondError(w, common.WithDetail(common.ErrorBadRequest, "invalid request body"))
		return
	}

	user, err := h.service.Register(r.Context(), req)
	if err != nil {
		h.collector.RecordRegistration(registrationResult(err))
		h.logger.Warn(r.Context(), "registration failed",
			"email", req.Email,
			"error", err.Error(),
			"request_id", RequestIDFromContext(r.Context()),
		)
		respondError(w, err)
		return
	}

	h.collector.RecordRegistration(metrics.ResultSuccess)
	h.logger.Info(r.Context(), "user registered",
		"user_id", user.ID,
		"request_id", RequestIDFromContext(r.Context()),
	)
	writeJSON(w, http.StatusOK, user)
}

// Login authenticates credentials, issues a session token and stores it in
// the session cookie. The full user record (minus the password hash) is
// returned to the caller. Failure paths never touch the cookie.
// POST /login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var creds users.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		h.collector.RecordLogin(metrics.ResultError)
		respondError(w, common.WithDetail(common.ErrorBadRequest, "invalid request body"))
		return
	}

	user, token, err := h.service.Login(r.Context(), creds.Email, creds.Password)
	if err != nil {
		h.collector.RecordLogin(loginResult(err))
		h.logger.Warn(r.Context(), "login failed",
			"email", creds.Email,
			"error", err.Error(),
			"request_id", RequestIDFromContext(r.Context()),
		)
		respondError(w, err)
		return
	}

	h.remember(w, token)
	h.collector.RecordLogin(metrics.ResultSuccess)
	h.logger.Info(r.Context(), "user logged in",
		"user_id", user.ID,
		"request_id", RequestIDFromContext(r.Context()),
	)
	writeJSON(w, http.StatusOK, user)
}

// Logout clears the session cookie. Always succeeds; the token itself stays
// valid until expiry (stateless design, no revocation list).
// POST /logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.forget(w)
	writeJSON(w, http.StatusOK, "success")
}

// Me returns the authenticated identity recovered by the middleware.
// GET /me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	identity, err := IdentityFromContext(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, identity)
}

// remember persists the session artifact on the caller's behalf.
func (h *AuthHandler) remember(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    token,
		Path:     h.cookie.Path,
		Domain:   h.cookie.Domain,
		MaxAge:   h.cookie.MaxAge,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// forget clears the session artifact.
func (h *AuthHandler) forget(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Path:     h.cookie.Path,
		Domain:   h.cookie.Domain,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func loginResult(err error) string {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		return metrics.ResultNotFound
	case errors.Is(err, common.ErrorWrongPassword):
		return metrics.ResultWrongPassword
	default:
		return metrics.ResultError
	}
}

func registrationResult(err error) string {
	switch {
	case errors.Is(err, common.ErrorPasswordMismatch), errors.Is(err, common.ErrorWeakPassword):
		return metrics.ResultRejected
	case errors.Is(err, common.ErrorStorageConflict):
		return metrics.ResultConflict
	default:
		return metrics.ResultError
	}
}
