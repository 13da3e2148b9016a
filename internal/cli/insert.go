package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/toolbox/internal/models"
	"github.com/dmitrijs2005/toolbox/internal/services"
)

func (a *App) importService(ctx context.Context) (*services.ImportService, func(), error) {
	store, err := a.openStore(ctx)
	if err != nil {
		return nil, nil, err
	}

	db, m, err := a.openDB(ctx)
	if err != nil {
		return nil, nil, err
	}

	closeFn := func() {
		if err := db.Close(); err != nil {
			a.logger.Warn(ctx, "db close error", "error", err)
		}
	}
	return services.NewImportService(db, m, store, a.logger), closeFn, nil
}

// InsertMany imports the configured CSV file in a single transaction.
func (a *App) InsertMany(ctx context.Context) error {
	s, closeFn, err := a.importService(ctx)
	if err != nil {
		return a.fail(ctx, err)
	}
	defer closeFn()

	n, err := s.ImportFile(ctx, a.config.CSVPath)
	if err != nil {
		return a.fail(ctx, err)
	}

	fmt.Fprintf(a.out, "%d records inserted.\n", n)
	return nil
}

// InsertOne prompts for a name and an email and inserts them.
func (a *App) InsertOne(ctx context.Context) error {
	name, err := a.ask("Type a name: ")
	if err != nil {
		return a.fail(ctx, err)
	}
	email, err := a.ask("Type an email: ")
	if err != nil {
		return a.fail(ctx, err)
	}

	s, closeFn, err := a.importService(ctx)
	if err != nil {
		return a.fail(ctx, err)
	}
	defer closeFn()

	n, err := s.InsertOne(ctx, models.Record{Name: name, Email: email})
	if err != nil {
		return a.fail(ctx, err)
	}

	fmt.Fprintf(a.out, "%d record inserted.\n", n)
	return nil
}
