// Package httpapi is the HTTP boundary of the authentication core: handlers
// for registration and login, the identity-extraction middleware, and the
// mapping from the error taxonomy to transport responses.
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mstoliarov/authgate/internal/common"
)

const genericServerError = "Internal Server Error, Please try later"

// statusFor maps every kind of the error taxonomy to exactly one transport
// outcome. The mapping is total: anything outside the taxonomy falls back to
// a generic 500 so internals never leak. Only the storage-conflict detail is
// intentionally surfaced to the client.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, common.ErrorUnauthorized):
		return http.StatusUnauthorized, "Unauthorized"
	case errors.Is(err, common.ErrorNotFound):
		return http.StatusNotFound, common.ErrorNotFound.Error()
	case errors.Is(err, common.ErrorHash):
		return http.StatusBadRequest, "hash error"
	case errors.Is(err, common.ErrorPasswordMismatch):
		return http.StatusBadRequest, common.ErrorPasswordMismatch.Error()
	case errors.Is(err, common.ErrorWeakPassword):
		return http.StatusBadRequest, common.ErrorWeakPassword.Error()
	case errors.Is(err, common.ErrorWrongPassword):
		return http.StatusBadRequest, common.ErrorWrongPassword.Error()
	case errors.Is(err, common.ErrorStorageConflict):
		if detail, ok := common.Detail(err); ok {
			return http.StatusBadRequest, detail
		}
		return http.StatusBadRequest, common.ErrorStorageConflict.Error()
	case errors.Is(err, common.ErrorBadRequest):
		if detail, ok := common.Detail(err); ok {
			return http.StatusBadRequest, detail
		}
		return http.StatusBadRequest, common.ErrorBadRequest.Error()
	case errors.Is(err, common.ErrorStorageUnavailable):
		return http.StatusInternalServerError, genericServerError
	case errors.Is(err, common.ErrorStorage):
		return http.StatusInternalServerError, genericServerError
	default:
		return http.StatusInternalServerError, genericServerError
	}
}

// respondError writes the transport outcome for err.
func respondError(w http.ResponseWriter, err error) {
	status, message := statusFor(err)
	writeJSON(w, status, message)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
