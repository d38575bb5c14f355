// Package repomanager hands out repositories bound to a database handle and
// owns schema migrations. Services receive a RepositoryManager so they can
// run repositories against either the pool or an open transaction.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dynsched/dynsched/internal/dbx"
	"github.com/dynsched/dynsched/internal/server/repositories/events"
	"github.com/dynsched/dynsched/internal/server/repositories/tasks"
	"github.com/dynsched/dynsched/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Events(db dbx.DBTX) events.Repository
	Tasks(db dbx.DBTX) tasks.Repository
}
