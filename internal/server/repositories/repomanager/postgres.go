// Package repomanager provides a concrete Manager for PostgreSQL, wiring
// together repository constructors and database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"

	"github.com/vincenttwizere/Refuture-sub002/internal/dbx"
	"github.com/vincenttwizere/Refuture-sub002/internal/server/migrations"
	"github.com/vincenttwizere/Refuture-sub002/internal/server/repositories/contact"
	"github.com/vincenttwizere/Refuture-sub002/internal/server/repositories/opportunities"
	"github.com/vincenttwizere/Refuture-sub002/internal/server/repositories/profiles"
	"github.com/vincenttwizere/Refuture-sub002/internal/server/repositories/settings"
	"github.com/vincenttwizere/Refuture-sub002/internal/server/repositories/users"
)

type PostgresManager struct{}

var _ Manager = (*PostgresManager)(nil)

func NewPostgresManager() *PostgresManager {
	return &PostgresManager{}
}

// gooseUpContext is a seam for testing RunMigrations.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *PostgresManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, ".")
}

func (m *PostgresManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

func (m *PostgresManager) Profiles(db dbx.DBTX) profiles.Repository {
	return profiles.NewPostgresRepository(db)
}

func (m *PostgresManager) Opportunities(db dbx.DBTX) opportunities.Repository {
	return opportunities.NewPostgresRepository(db)
}

func (m *PostgresManager) Settings(db dbx.DBTX) settings.Repository {
	return settings.NewPostgresRepository(db)
}

func (m *PostgresManager) Contact(db dbx.DBTX) contact.Repository {
	return contact.NewPostgresRepository(db)
}
