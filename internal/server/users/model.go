// Package users contains the user model, registration validation, the user
// repository, and the service driving the registration and login flows.
package users

import (
	"time"

	"github.com/mstoliarov/authgate/internal/common"
)

// User is the persisted user record. The password hash is never serialized.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewUser carries the fields of a user row about to be inserted.
type NewUser struct {
	Email        string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// RegisterRequest is the transient registration payload. It is only valid
// when the password matches its confirmation and is non-empty.
type RegisterRequest struct {
	Email                string `json:"email"`
	Username             string `json:"username"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

// Validate enforces the registration invariants, in order: confirmation
// mismatch, then empty password. It is a pure function; a request that fails
// validation must never reach the hasher.
func (r RegisterRequest) Validate() error {
	if r.Password != r.PasswordConfirmation {
		return common.ErrorPasswordMismatch
	}
	if r.Password == "" {
		return common.ErrorWeakPassword
	}
	return nil
}

// Credentials is the transient login payload. Never persisted as-is.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
