// Package repomanager vends dialect-aware repository implementations and
// applies the embedded goose migrations.
package repomanager

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/dmitrijs2005/toolbox/internal/dbx"
	"github.com/dmitrijs2005/toolbox/internal/migrations"
	"github.com/dmitrijs2005/toolbox/internal/repositories/editorial"
	"github.com/pressly/goose/v3"
)

// SQLRepositoryManager binds repositories to one SQL dialect.
type SQLRepositoryManager struct {
	dialect dbx.Dialect
}

// gooseUp is a seam for testing goose.UpContext.
var gooseUp = func(ctx context.Context, db *sql.DB, fsys fs.FS, dialect string) error {
	goose.SetBaseFS(fsys)
	// stdout belongs to the tools' own output
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect(dialect); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}

func (m *SQLRepositoryManager) Dialect() dbx.Dialect {
	return m.dialect
}

// Editorial returns an editorial.Repository bound to the provided DBTX.
func (m *SQLRepositoryManager) Editorial(db dbx.DBTX) editorial.Repository {
	return editorial.NewSQLRepository(db, m.dialect)
}

// RunMigrations applies the dialect's embedded migrations to db.
func (m *SQLRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	fsys, err := migrations.For(m.dialect)
	if err != nil {
		return err
	}
	if err := gooseUp(ctx, db, fsys, m.dialect.GooseDialect()); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}
	return nil
}

// NewSQLRepositoryManager constructs a RepositoryManager for the named driver.
func NewSQLRepositoryManager(driver string) (RepositoryManager, error) {
	d, err := dbx.ParseDialect(driver)
	if err != nil {
		return nil, err
	}
	return &SQLRepositoryManager{dialect: d}, nil
}
