package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/toolbox/internal/services"
)

// GenerateCSV writes the configured number of rows to the configured path,
// which may be an s3:// URI, and publishes a local file when a bucket is set.
func (a *App) GenerateCSV(ctx context.Context) error {
	if a.config.RowCount < 0 {
		return a.fail(ctx, fmt.Errorf("row count must not be negative, got %d", a.config.RowCount))
	}

	store, err := a.openStore(ctx)
	if err != nil {
		return a.fail(ctx, err)
	}

	s := services.NewExportService(store, a.config.S3Bucket, a.logger)
	uri, err := s.Generate(ctx, a.config.CSVPath, a.config.RowCount)
	if err != nil {
		return a.fail(ctx, err)
	}

	fmt.Fprintf(a.out, "%s created successfully with %d entries.\n", a.config.CSVPath, a.config.RowCount)
	if uri != "" && uri != a.config.CSVPath {
		fmt.Fprintf(a.out, "Uploaded to %s.\n", uri)
	}
	return nil
}
