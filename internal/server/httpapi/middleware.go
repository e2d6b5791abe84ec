package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/mstoliarov/authgate/internal/common"
	"github.com/mstoliarov/authgate/internal/logging"
	"github.com/mstoliarov/authgate/internal/server/auth"
	"github.com/mstoliarov/authgate/internal/server/metrics"
)

type ctxKey string

const (
	identityKey  ctxKey = "identity"
	requestIDKey ctxKey = "requestID"
)

const requestIDHeader = "X-Request-Id"

// TokenVerifier verifies a session artifact and returns the identity it
// carries. Implemented by auth.TokenCodec.
type TokenVerifier interface {
	Verify(tokenString string) (*auth.SlimUser, error)
}

// NewIdentityMiddleware returns a middleware that recovers the caller's
// identity from the session cookie. The cookie value always goes through the
// verifier's signature and expiry checks; a missing cookie or any
// verification failure yields 401 without distinguishing the reason. The
// middleware performs no database access.
func NewIdentityMiddleware(verifier TokenVerifier, cookieName string, collector *metrics.Collector) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				collector.RecordTokenVerify(metrics.ResultUnauthorized)
				respondError(w, common.ErrorUnauthorized)
				return
			}

			identity, err := verifier.Verify(cookie.Value)
			if err != nil {
				collector.RecordTokenVerify(metrics.ResultUnauthorized)
				respondError(w, common.ErrorUnauthorized)
				return
			}

			collector.RecordTokenVerify(metrics.ResultSuccess)
			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFromContext returns the identity injected by the middleware, or
// common.ErrorUnauthorized when the request never passed through it.
func IdentityFromContext(ctx context.Context) (*auth.SlimUser, error) {
	identity, ok := ctx.Value(identityKey).(*auth.SlimUser)
	if !ok || identity == nil {
		return nil, common.ErrorUnauthorized
	}
	return identity, nil
}

// ContextWithIdentity injects an identity into ctx. Used by tests and by
// context construction outside the middleware.
func ContextWithIdentity(ctx context.Context, identity *auth.SlimUser) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// RequestID assigns each request an identifier for log correlation, reusing
// the inbound header when present.
func RequestID() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(requestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}
			w.Header().Set(requestIDHeader, id)
			ctx := context.WithValue(r.Context(), requestIDKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequestIDFromContext returns the request identifier, if one was assigned.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// RequestLogger logs one line per request with method, path, status, duration
// and the correlation id.
func RequestLogger(logger logging.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			logger.Info(r.Context(), "request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"duration", time.Since(start).String(),
				"request_id", RequestIDFromContext(r.Context()),
			)
		})
	}
}
