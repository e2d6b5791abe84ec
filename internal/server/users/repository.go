package users

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, user *NewUser) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
}
