package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/toolbox/internal/common"
	"github.com/dmitrijs2005/toolbox/internal/logging"
	"github.com/dmitrijs2005/toolbox/internal/models"
	"github.com/dmitrijs2005/toolbox/internal/objectstore"
	"github.com/dmitrijs2005/toolbox/internal/records"
)

// ExportService writes synthetic exchange files and optionally publishes
// them to object storage.
type ExportService struct {
	store  objectstore.Store
	bucket string
	logger logging.Logger
}

// NewExportService constructs an ExportService. A nil store (or empty
// bucket) keeps files local.
func NewExportService(store objectstore.Store, bucket string, logger logging.Logger) *ExportService {
	return &ExportService{store: store, bucket: bucket, logger: logger}
}

// Generate writes a header and n synthetic rows to dest and returns the
// s3:// URI when the file ended up in object storage.
//
// dest is a local path or s3://bucket/key. A local file is also published
// under its base name when the service has a bucket.
func (s *ExportService) Generate(ctx context.Context, dest string, n int) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("row count must not be negative, got %d", n)
	}
	recs := records.Generate(n)

	if bucket, key, ok := objectstore.ParseURI(dest); ok {
		return s.put(ctx, bucket, key, recs)
	}
	if objectstore.IsURI(dest) {
		return "", fmt.Errorf("%s: want s3://bucket/key", dest)
	}

	if err := records.WriteFile(dest, recs); err != nil {
		return "", fmt.Errorf("write %s: %w", dest, err)
	}
	s.logger.Info(ctx, "csv written", "path", dest, "rows", n)

	if s.store == nil || s.bucket == "" {
		return "", nil
	}

	f, err := os.Open(dest)
	if err != nil {
		return "", err
	}
	defer f.Close()

	return s.upload(ctx, s.bucket, filepath.Base(dest), f)
}

func (s *ExportService) put(ctx context.Context, bucket, key string, recs []models.Record) (string, error) {
	if s.store == nil {
		return "", fmt.Errorf("%s: %w", objectstore.URI(bucket, key), common.ErrStorageDisabled)
	}

	var buf bytes.Buffer
	if err := records.Write(&buf, recs); err != nil {
		return "", err
	}
	return s.upload(ctx, bucket, key, bytes.NewReader(buf.Bytes()))
}

func (s *ExportService) upload(ctx context.Context, bucket, key string, body io.Reader) (string, error) {
	if err := s.store.Put(ctx, bucket, key, body); err != nil {
		return "", err
	}

	uri := objectstore.URI(bucket, key)
	s.logger.Info(ctx, "csv published", "uri", uri)
	return uri, nil
}
