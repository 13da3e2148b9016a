package dbx

import (
	"errors"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/toolbox/internal/common"
	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDialect(t *testing.T) {
	tests := []struct {
		in   string
		want Dialect
	}{
		{"pgx", Postgres},
		{"postgres", Postgres},
		{" PostgreSQL ", Postgres},
		{"mysql", MySQL},
		{"sqlite", SQLite},
		{"sqlite3", SQLite},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDialect(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseDialect("oracle")
	require.ErrorIs(t, err, common.ErrUnsupportedDriver)
}

func TestDialect_Names(t *testing.T) {
	assert.Equal(t, "pgx", Postgres.DriverName())
	assert.Equal(t, "postgres", Postgres.GooseDialect())
	assert.Equal(t, "mysql", MySQL.GooseDialect())
	assert.Equal(t, "sqlite3", SQLite.GooseDialect())
	assert.Equal(t, "sqlite", SQLite.DriverName())
}

func TestDialect_Placeholder(t *testing.T) {
	assert.Equal(t, "$1", Postgres.Placeholder(1))
	assert.Equal(t, "$12", Postgres.Placeholder(12))
	assert.Equal(t, "?", MySQL.Placeholder(2))
	assert.Equal(t, "?", SQLite.Placeholder(3))
}

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"plain", errors.New("boom"), false},
		{"postgres unique", &pgconn.PgError{Code: "23505"}, true},
		{"postgres wrapped", fmt.Errorf("db error: %w", &pgconn.PgError{Code: "23505"}), true},
		{"postgres not null", &pgconn.PgError{Code: "23502"}, false},
		{"mysql duplicate", &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}, true},
		{"mysql other", &mysql.MySQLError{Number: 1045}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsUniqueViolation(tt.err))
		})
	}
}
