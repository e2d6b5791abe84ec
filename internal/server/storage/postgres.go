// Package storage opens the PostgreSQL handle, constructs the repositories
// and applies pending migrations at startup.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/mstoliarov/authgate/internal/common"
	"github.com/mstoliarov/authgate/internal/server/migrations"
	"github.com/mstoliarov/authgate/internal/server/users"
	"github.com/pressly/goose/v3"
)

type Postgres struct {
	db    *sql.DB
	users users.Repository
}

func (p *Postgres) Users() users.Repository {
	return p.users
}

func (p *Postgres) Close() error {
	return p.db.Close()
}

func (p *Postgres) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.UpContext(ctx, p.db, "."); err != nil {
		return err
	}

	return nil
}

func NewPostgres(dsn string) (*Postgres, error) {

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorStorageUnavailable, err)
	}

	usersRepo, err := users.NewPostgresRepository(db)
	if err != nil {
		return nil, fmt.Errorf("user repo creation error: %w", err)
	}

	p := &Postgres{db: db, users: usersRepo}

	if err := p.RunMigrations(context.Background()); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return p, nil
}
