package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mstoliarov/authgate/internal/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouterDeps bundles the dependencies NewRouter needs.
type RouterDeps struct {
	Handler  *AuthHandler
	Verifier TokenVerifier
	Logger   logging.Logger
	Registry *prometheus.Registry
}

// NewRouter wires the authentication endpoints. Registration, login and
// logout are open; everything requiring a caller identity sits behind the
// identity-extraction middleware.
func NewRouter(deps *RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(RequestID())
	r.Use(RequestLogger(deps.Logger))

	r.Post("/register", deps.Handler.Register)
	r.Post("/login", deps.Handler.Login)
	r.Post("/logout", deps.Handler.Logout)

	r.Group(func(r chi.Router) {
		r.Use(NewIdentityMiddleware(deps.Verifier, deps.Handler.cookie.Name, deps.Handler.collector))
		r.Get("/me", deps.Handler.Me)
	})

	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))

	return r
}
