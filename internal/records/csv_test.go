package records

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dmitrijs2005/toolbox/internal/common"
	"github.com/dmitrijs2005/toolbox/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	recs := Generate(3)

	require.Len(t, recs, 3)
	assert.Equal(t, models.Record{Name: "User1 Name", Email: "user1@example.com"}, recs[0])
	assert.Equal(t, models.Record{Name: "User3 Name", Email: "user3@example.com"}, recs[2])

	assert.Empty(t, Generate(0))
	assert.Empty(t, Generate(-4))
}

func TestWriteFile_TwentyRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "data.csv")

	require.NoError(t, WriteFile(path, Generate(20)))

	body, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(string(body), "\n"), "file must be newline terminated")

	lines := strings.Split(strings.TrimSuffix(string(body), "\n"), "\n")
	require.Len(t, lines, 21)
	assert.Equal(t, "name,email", lines[0])
	for i := 1; i <= 20; i++ {
		assert.Equal(t, fmt.Sprintf("User%d Name,user%d@example.com", i, i), lines[i])
	}
}

func TestWriteFile_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")

	require.NoError(t, WriteFile(path, Generate(5)))
	require.NoError(t, WriteFile(path, Generate(1)))

	body, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "name,email\nUser1 Name,user1@example.com\n", string(body))
}

func TestRead_RoundTripKeepsOrder(t *testing.T) {
	var buf bytes.Buffer
	want := []models.Record{
		{Name: "Zed", Email: "z@example.com"},
		{Name: "Doe, Jane", Email: "jane@example.com"},
		{Name: "Amy", Email: "a@example.com"},
	}
	require.NoError(t, Write(&buf, want))

	got, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRead_HeaderOnly(t *testing.T) {
	got, err := Read(strings.NewReader("name,email\n"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRead_Errors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		target error
	}{
		{"empty file", "", common.ErrMissingHeader},
		{"too many fields", "name,email\na,a@x,extra\n", common.ErrMalformedRecord},
		{"too few fields", "name,email\nok,ok@x\nlonely\n", common.ErrMalformedRecord},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.input))
			require.ErrorIs(t, err, tt.target)
		})
	}
}

func TestRead_MalformedReportsLine(t *testing.T) {
	_, err := Read(strings.NewReader("name,email\nok,ok@x\nlonely\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
}

func TestReadFile_Missing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.csv"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, WriteFile(path, Generate(3)))

	got, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Generate(3), got)

	require.NoError(t, os.WriteFile(path, []byte("name,email\nlonely\n"), 0o644))
	_, err = ReadFile(path)
	require.ErrorIs(t, err, common.ErrMalformedRecord)
	assert.Contains(t, err.Error(), path+": line 2")
}
