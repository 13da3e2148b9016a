// Package services contains the use cases behind the toolbox commands.
// ImportService loads records into the editorial table; ExportService
// produces the CSV exchange file.
package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/toolbox/internal/common"
	"github.com/dmitrijs2005/toolbox/internal/dbx"
	"github.com/dmitrijs2005/toolbox/internal/logging"
	"github.com/dmitrijs2005/toolbox/internal/models"
	"github.com/dmitrijs2005/toolbox/internal/objectstore"
	"github.com/dmitrijs2005/toolbox/internal/records"
	"github.com/dmitrijs2005/toolbox/internal/repositories/repomanager"
)

// ImportService inserts records through the editorial repository.
type ImportService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	store       objectstore.Store
	logger      logging.Logger
}

// NewImportService constructs an ImportService. store may be nil when no
// object storage is configured.
func NewImportService(db *sql.DB, m repomanager.RepositoryManager, store objectstore.Store, logger logging.Logger) *ImportService {
	return &ImportService{db: db, repomanager: m, store: store, logger: logger}
}

// InsertOne inserts a single record outside of an explicit transaction and
// returns the rows affected.
func (s *ImportService) InsertOne(ctx context.Context, rec models.Record) (int64, error) {
	n, err := s.repomanager.Editorial(s.db).Insert(ctx, rec)
	if err != nil {
		return 0, err
	}
	s.logger.Info(ctx, "record inserted", "email", rec.Email)
	return n, nil
}

// InsertMany inserts recs in order inside one transaction. Any failure,
// a duplicate email included, rolls back every row of the batch.
func (s *ImportService) InsertMany(ctx context.Context, recs []models.Record) (int, error) {
	var inserted int

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Editorial(tx)
		for i, rec := range recs {
			n, err := repo.Insert(ctx, rec)
			if err != nil {
				return fmt.Errorf("row %d: %w", i+1, err)
			}
			inserted += int(n)
		}
		return nil
	})
	if err != nil {
		s.logger.Warn(ctx, "batch rolled back", "rows", len(recs), "error", err)
		return 0, err
	}

	total, err := s.repomanager.Editorial(s.db).Count(ctx)
	if err != nil {
		s.logger.Warn(ctx, "count after commit", "error", err)
	}
	s.logger.Info(ctx, "batch committed", "rows", inserted, "table_rows", total)
	return inserted, nil
}

// ImportFile reads a CSV exchange file and inserts its rows with InsertMany.
// source is a local path or, with object storage configured, s3://bucket/key.
func (s *ImportService) ImportFile(ctx context.Context, source string) (int, error) {
	recs, err := s.read(ctx, source)
	if err != nil {
		return 0, err
	}
	s.logger.Debug(ctx, "csv parsed", "source", source, "rows", len(recs))

	return s.InsertMany(ctx, recs)
}

func (s *ImportService) read(ctx context.Context, source string) ([]models.Record, error) {
	bucket, key, ok := objectstore.ParseURI(source)
	if !ok {
		return records.ReadFile(source)
	}
	if s.store == nil {
		return nil, fmt.Errorf("%s: %w", source, common.ErrStorageDisabled)
	}

	rc, err := s.store.Get(ctx, bucket, key)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	recs, err := records.Read(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	return recs, nil
}
