// Package repomanager defines the RepositoryManager abstraction that vends
// repositories bound to either a live connection or a transaction, so
// services can compose multi-statement operations without caring which
// handle they run on.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/Sumit-1325/auth-backend/internal/dbx"
	"github.com/Sumit-1325/auth-backend/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to the provided DBTX and
// exposes a schema migration hook.
type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
}
