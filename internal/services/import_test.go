package services

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dmitrijs2005/toolbox/internal/common"
	"github.com/dmitrijs2005/toolbox/internal/dbx"
	"github.com/dmitrijs2005/toolbox/internal/logging"
	"github.com/dmitrijs2005/toolbox/internal/models"
	"github.com/dmitrijs2005/toolbox/internal/repositories/repomanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	objects map[string][]byte
}

func newMemStore() *memStore { return &memStore{objects: map[string][]byte{}} }

func (m *memStore) Put(ctx context.Context, bucket, key string, body io.Reader) error {
	b, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	m.objects[bucket+"/"+key] = b
	return nil
}

func (m *memStore) Get(ctx context.Context, bucket, key string) (io.ReadCloser, error) {
	b, ok := m.objects[bucket+"/"+key]
	if !ok {
		return nil, errors.New("no such key")
	}
	return io.NopCloser(bytes.NewReader(b)), nil
}

func testLogger() logging.Logger {
	return logging.NewToolLogger(io.Discard, "test", true)
}

func setupDB(t *testing.T) (*sql.DB, repomanager.RepositoryManager) {
	t.Helper()
	ctx := context.Background()

	db, err := dbx.Open(ctx, dbx.SQLite, filepath.Join(t.TempDir(), "staff.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	m, err := repomanager.NewSQLRepositoryManager("sqlite")
	require.NoError(t, err)
	require.NoError(t, m.RunMigrations(ctx, db))

	return db, m
}

func countRows(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM editorial").Scan(&n))
	return n
}

func TestImportService_InsertOne(t *testing.T) {
	db, m := setupDB(t)
	s := NewImportService(db, m, nil, testLogger())
	ctx := context.Background()

	n, err := s.InsertOne(ctx, models.Record{Name: "Jack", Email: "jack@example.com"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	_, err = s.InsertOne(ctx, models.Record{Name: "Other", Email: "jack@example.com"})
	require.ErrorIs(t, err, common.ErrAlreadyExists)
	assert.Equal(t, 1, countRows(t, db))
}

func TestImportService_InsertMany(t *testing.T) {
	db, m := setupDB(t)
	s := NewImportService(db, m, nil, testLogger())

	recs := []models.Record{
		{Name: "A", Email: "a@example.com"},
		{Name: "B", Email: "b@example.com"},
		{Name: "C", Email: "c@example.com"},
	}
	n, err := s.InsertMany(context.Background(), recs)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, 3, countRows(t, db))
}

func TestImportService_InsertMany_DuplicateRollsBack(t *testing.T) {
	db, m := setupDB(t)
	s := NewImportService(db, m, nil, testLogger())

	recs := []models.Record{
		{Name: "A", Email: "a@example.com"},
		{Name: "B", Email: "b@example.com"},
		{Name: "A again", Email: "a@example.com"},
	}
	n, err := s.InsertMany(context.Background(), recs)
	require.ErrorIs(t, err, common.ErrAlreadyExists)
	assert.Contains(t, err.Error(), "row 3")
	assert.Equal(t, 0, n)
	assert.Equal(t, 0, countRows(t, db))
}

func TestImportService_InsertMany_Empty(t *testing.T) {
	db, m := setupDB(t)
	s := NewImportService(db, m, nil, testLogger())

	n, err := s.InsertMany(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestImportService_ImportFile_Local(t *testing.T) {
	db, m := setupDB(t)
	s := NewImportService(db, m, nil, testLogger())

	var b strings.Builder
	b.WriteString("name,email\n")
	for i := 1; i <= 5; i++ {
		fmt.Fprintf(&b, "User%d,user%d@example.com\n", i, i)
	}
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o644))

	n, err := s.ImportFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, 5, countRows(t, db))
}

func TestImportService_ImportFile_Missing(t *testing.T) {
	db, m := setupDB(t)
	s := NewImportService(db, m, nil, testLogger())

	_, err := s.ImportFile(context.Background(), filepath.Join(t.TempDir(), "nope.csv"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestImportService_ImportFile_Malformed(t *testing.T) {
	db, m := setupDB(t)
	s := NewImportService(db, m, nil, testLogger())

	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("name,email\nonly-one-field\n"), 0o644))

	_, err := s.ImportFile(context.Background(), path)
	require.ErrorIs(t, err, common.ErrMalformedRecord)
	assert.Contains(t, err.Error(), path+": line 2")
	assert.Equal(t, 0, countRows(t, db))
}

func TestImportService_ImportFile_S3(t *testing.T) {
	db, m := setupDB(t)
	store := newMemStore()
	store.objects["exports/data.csv"] = []byte("name,email\nA,a@example.com\nB,b@example.com\n")
	s := NewImportService(db, m, store, testLogger())

	n, err := s.ImportFile(context.Background(), "s3://exports/data.csv")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestImportService_ImportFile_S3Disabled(t *testing.T) {
	db, m := setupDB(t)
	s := NewImportService(db, m, nil, testLogger())

	_, err := s.ImportFile(context.Background(), "s3://exports/data.csv")
	require.ErrorIs(t, err, common.ErrStorageDisabled)
}
