// Package records reads and writes the name,email CSV exchange file and
// synthesizes sample rows for it.
package records

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/toolbox/internal/common"
	"github.com/dmitrijs2005/toolbox/internal/filex"
	"github.com/dmitrijs2005/toolbox/internal/models"
)

// Header is the first row of every exchange file.
var Header = []string{"name", "email"}

// Generate returns n synthetic records numbered from 1.
func Generate(n int) []models.Record {
	recs := make([]models.Record, 0, max(n, 0))
	for i := 1; i <= n; i++ {
		recs = append(recs, models.Record{
			Name:  fmt.Sprintf("User%d Name", i),
			Email: fmt.Sprintf("user%d@example.com", i),
		})
	}
	return recs
}

// Write emits the header followed by one line per record, "\n" terminated.
func Write(w io.Writer, recs []models.Record) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, r := range recs {
		if err := cw.Write([]string{r.Name, r.Email}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteFile overwrites path with recs, creating parent directories.
func WriteFile(path string, recs []models.Record) (err error) {
	f, err := filex.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return Write(f, recs)
}

// Read skips the header row and returns the remaining rows in file order.
// Every row must have exactly two fields.
func Read(r io.Reader) ([]models.Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, common.ErrMissingHeader
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	var recs []models.Record
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}

		if len(row) != 2 {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("line %d: %w: want 2 fields, got %d", line, common.ErrMalformedRecord, len(row))
		}
		recs = append(recs, models.Record{Name: row[0], Email: row[1]})
	}

	return recs, nil
}

// ReadFile opens path and reads it with Read. Parse errors are prefixed
// with path.
func ReadFile(path string) ([]models.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	recs, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return recs, nil
}
