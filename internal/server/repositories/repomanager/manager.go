// Package repomanager vends repository implementations bound to a DBTX and
// exposes the schema migration hook run at startup.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/carlosdaniiel07/identity-service/internal/dbx"
	"github.com/carlosdaniiel07/identity-service/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
}
