// Package editorial stores name/email records in the editorial table.
package editorial

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/toolbox/internal/common"
	"github.com/dmitrijs2005/toolbox/internal/dbx"
	"github.com/dmitrijs2005/toolbox/internal/models"
)

type SQLRepository struct {
	db          dbx.DBTX
	insertQuery string
}

func NewSQLRepository(db dbx.DBTX, d dbx.Dialect) *SQLRepository {
	return &SQLRepository{
		db: db,
		insertQuery: fmt.Sprintf(
			`INSERT INTO editorial (name, email) VALUES (%s, %s)`,
			d.Placeholder(1), d.Placeholder(2)),
	}
}

// Insert adds one row and returns the number of rows affected.
// A duplicate email yields common.ErrAlreadyExists.
func (r *SQLRepository) Insert(ctx context.Context, rec models.Record) (int64, error) {
	res, err := r.db.ExecContext(ctx, r.insertQuery, rec.Name, rec.Email)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return 0, fmt.Errorf("email %q: %w", rec.Email, common.ErrAlreadyExists)
		}
		return 0, fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *SQLRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM editorial`).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
