package users

import (
	"context"
	"errors"
	"time"

	"github.com/mstoliarov/authgate/internal/common"
	"github.com/mstoliarov/authgate/internal/server/auth"
)

// Service provides the authentication flows:
//   - Register: validate the request, hash the password, create the user
//   - Login: verify credentials and mint a session token
//
// It holds no mutable state; every call is independent, and the slow hashing
// step runs on the calling goroutine without any shared lock.
type Service struct {
	repo   Repository
	hasher *auth.Hasher
	tokens *auth.TokenCodec
}

func NewService(repo Repository, hasher *auth.Hasher, tokens *auth.TokenCodec) *Service {
	return &Service{repo: repo, hasher: hasher, tokens: tokens}
}

// Register creates a new user from the given request. Validation runs before
// hashing, so a request that will be rejected never pays the bcrypt cost.
// Storage errors arrive already translated by the repository.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*User, error) {

	if err := req.Validate(); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.Create(ctx, &NewUser{
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Login authenticates the given credentials and returns the user record
// together with a freshly issued session token.
//
// An unknown email yields common.ErrorNotFound and a failed password check
// yields common.ErrorWrongPassword; the distinction exists for observability,
// both are client-facing failures. No failure path issues a token.
func (s *Service) Login(ctx context.Context, email, password string) (*User, string, error) {

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, "", common.ErrorNotFound
		}
		return nil, "", err
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		return nil, "", err
	}
	if !ok {
		return nil, "", common.ErrorWrongPassword
	}

	token, err := s.tokens.Issue(user.ID, user.Email, user.Username)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	return user, token, nil
}
