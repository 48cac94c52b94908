package repomanager

import (
	"context"
	"database/sql"

	"github.com/avlearn/authkeeper/internal/dbx"
	"github.com/avlearn/authkeeper/internal/server/repositories/instructors"
	"github.com/avlearn/authkeeper/internal/server/repositories/students"
	"github.com/avlearn/authkeeper/internal/server/repositories/tokens"
)

// RepositoryManager vends repositories bound to a DBTX handle supplied per
// call. Binding happens at the operation site, so a transaction handle and
// the plain connection never share a repository instance.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Tokens(db dbx.DBTX) tokens.Repository
	Students(db dbx.DBTX) students.Repository
	Instructors(db dbx.DBTX) instructors.Repository
}
