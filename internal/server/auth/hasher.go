// Package auth implements the authentication primitives of the server:
// one-way password hashing and the signed session token codec.
package auth

import (
	"errors"
	"fmt"

	"github.com/mstoliarov/authgate/internal/common"
	"golang.org/x/crypto/bcrypt"
)

// Hasher hashes and verifies passwords with bcrypt. The cost factor is fixed
// at construction; bcrypt generates a random salt per hash, so the same
// plaintext never produces the same hash twice. A Hasher is safe for
// concurrent use.
type Hasher struct {
	cost int
}

// NewHasher creates a Hasher with the given bcrypt cost. Costs outside the
// bcrypt-supported range fall back to the default cost.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash returns the bcrypt hash of the given plaintext. Library failures
// surface as common.ErrorHash.
func (h *Hasher) Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrorHash, err)
	}
	return string(hash), nil
}

// Verify reports whether plain matches hash. A plain mismatch returns
// (false, nil); any other library failure surfaces as common.ErrorHash and is
// never treated as a non-match.
func (h *Hasher) Verify(plain string, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, fmt.Errorf("%w: %v", common.ErrorHash, err)
}
