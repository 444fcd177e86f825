// Package repomanager wires repository constructors to a concrete database
// backend and owns schema migrations.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/taskhub/internal/dbx"
	"github.com/dmitrijs2005/taskhub/internal/server/repositories/todos"
	"github.com/dmitrijs2005/taskhub/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX, which lets a service
// run several repository calls inside one transaction when needed.
type RepositoryManager interface {
	Users(db dbx.DBTX) users.Repository
	Todos(db dbx.DBTX) todos.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}
