// Package migrations embeds the goose migrations for every supported dialect.
package migrations

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/dmitrijs2005/toolbox/internal/dbx"
)

//go:embed postgres/*.sql mysql/*.sql sqlite/*.sql
var Migrations embed.FS

// For returns the migrations of one dialect, rooted at ".".
func For(d dbx.Dialect) (fs.FS, error) {
	var dir string
	switch d {
	case dbx.Postgres:
		dir = "postgres"
	case dbx.MySQL:
		dir = "mysql"
	case dbx.SQLite:
		dir = "sqlite"
	default:
		return nil, fmt.Errorf("no migrations for dialect %q", d)
	}
	return fs.Sub(Migrations, dir)
}
