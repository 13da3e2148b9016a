package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/toolbox/internal/dbx"
	"github.com/dmitrijs2005/toolbox/internal/repositories/editorial"
)

type RepositoryManager interface {
	Dialect() dbx.Dialect
	RunMigrations(context.Context, *sql.DB) error
	Editorial(db dbx.DBTX) editorial.Repository
}
