package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mstoliarov/authgate/internal/common"
)

// Claims is the signed payload of a session token: standard registered
// claims plus the identity fields of the authenticated user.
type Claims struct {
	jwt.RegisteredClaims
	UserID   int64
	Email    string
	Username string
}

// SlimUser is the externally visible authenticated-identity shape projected
// from verified Claims. It never carries the password hash.
type SlimUser struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// TokenCodec issues and verifies signed session tokens (HS256). Tokens are
// self-contained: they carry their own claims and expiry, so no server-side
// session store is needed. The secret and validity window are fixed at
// construction and safe for unlimited concurrent readers.
type TokenCodec struct {
	secret   []byte
	validity time.Duration
}

func NewTokenCodec(secret []byte, validity time.Duration) *TokenCodec {
	return &TokenCodec{secret: secret, validity: validity}
}

// Issue signs a token for the given identity, expiring after the configured
// validity window.
func (c *TokenCodec) Issue(userID int64, email, username string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.validity)),
		},
		UserID:   userID,
		Email:    email,
		Username: username,
	})

	tokenString, err := token.SignedString(c.secret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// Verify checks the signature and expiry of tokenString and returns the
// identity it carries. Every failure — malformed structure, wrong signature,
// unexpected algorithm, expired token — collapses to common.ErrorUnauthorized
// so callers cannot probe why a token was rejected.
func (c *TokenCodec) Verify(tokenString string) (*SlimUser, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrorUnauthorized
		}
		return c.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, common.ErrorUnauthorized
	}

	return &SlimUser{ID: claims.UserID, Email: claims.Email, Username: claims.Username}, nil
}
