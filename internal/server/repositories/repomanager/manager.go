package repomanager

import (
	"context"
	"database/sql"

	"github.com/vincenttwizere/Refuture-sub002/internal/dbx"
	"github.com/vincenttwizere/Refuture-sub002/internal/server/repositories/contact"
	"github.com/vincenttwizere/Refuture-sub002/internal/server/repositories/opportunities"
	"github.com/vincenttwizere/Refuture-sub002/internal/server/repositories/profiles"
	"github.com/vincenttwizere/Refuture-sub002/internal/server/repositories/settings"
	"github.com/vincenttwizere/Refuture-sub002/internal/server/repositories/users"
)

// Manager vends repositories bound to a DBTX, so a service can run several
// repositories inside one transaction by handing them the same tx handle.
type Manager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Profiles(db dbx.DBTX) profiles.Repository
	Opportunities(db dbx.DBTX) opportunities.Repository
	Settings(db dbx.DBTX) settings.Repository
	Contact(db dbx.DBTX) contact.Repository
}
