package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mstoliarov/authgate/internal/common"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) (*PostgresRepository, error) {
	return &PostgresRepository{db: db}, nil
}

// Create inserts a user row. A unique violation (duplicate email) is
// translated to common.ErrorStorageConflict carrying the driver detail; any
// other failure becomes common.ErrorStorage.
func (r *PostgresRepository) Create(ctx context.Context, user *NewUser) (*User, error) {

	query :=
		`INSERT INTO users (email, username, password_hash, created_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id
		 `

	created := &User{
		Email:        user.Email,
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt,
	}

	err := r.db.QueryRowContext(ctx, query,
		user.Email, user.Username, user.PasswordHash, user.CreatedAt).Scan(&created.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			detail := pgErr.Detail
			if detail == "" {
				detail = pgErr.Message
			}
			return nil, common.WithDetail(common.ErrorStorageConflict, detail)
		}
		return nil, fmt.Errorf("%w: error performing sql request: %v", common.ErrorStorage, err)
	}

	return created, nil
}

// GetUserByEmail loads a user row by its unique email. Zero rows map to
// common.ErrorNotFound.
func (r *PostgresRepository) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	query :=
		`SELECT id, email, username, password_hash, created_at FROM users
		 WHERE email = $1
		 `

	user := &User{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID, &user.Email, &user.Username, &user.PasswordHash, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("%w: error performing sql request: %v", common.ErrorStorage, err)
	}

	return user, nil
}
