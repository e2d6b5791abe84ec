// Package common defines the closed error taxonomy shared across the
// authentication core and its boundary layers. Callers should use errors.Is
// to match a kind and Detail to recover the optional human-readable detail.
package common

import "errors"

var (
	// Hashing / verification library failures.
	ErrorHash = errors.New("hash error")

	// Registration validation errors.
	ErrorPasswordMismatch = errors.New("password and password confirmation do not match")
	ErrorWeakPassword     = errors.New("wrong password, check it is not empty")

	// Login errors.
	ErrorWrongPassword = errors.New("wrong password, check again please")
	ErrorNotFound      = errors.New("not found")

	// Storage errors, translated at the persistence boundary.
	ErrorStorageUnavailable = errors.New("error obtaining a db connection")
	ErrorStorageConflict    = errors.New("duplicate value violates a unique constraint")
	ErrorStorage            = errors.New("db error")

	// Boundary errors.
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorBadRequest   = errors.New("bad request")
	ErrorInternal     = errors.New("internal error")
)

// DetailedError attaches a single human-readable detail string to one of the
// taxonomy kinds above. It unwraps to the kind, so errors.Is keeps working.
type DetailedError struct {
	Kind   error
	Detail string
}

func (e *DetailedError) Error() string {
	return e.Kind.Error() + ": " + e.Detail
}

func (e *DetailedError) Unwrap() error {
	return e.Kind
}

// WithDetail wraps kind with a detail string.
func WithDetail(kind error, detail string) error {
	return &DetailedError{Kind: kind, Detail: detail}
}

// Detail returns the detail string carried by err, if any.
func Detail(err error) (string, bool) {
	var de *DetailedError
	if errors.As(err, &de) {
		return de.Detail, true
	}
	return "", false
}
