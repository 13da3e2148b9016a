package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "pgx", c.DatabaseDriver)
	assert.Equal(t, "postgres://jack:jackroot@db:5432/staff?sslmode=disable", c.DatabaseDSN)
	assert.Equal(t, "data/data.csv", c.CSVPath)
	assert.Equal(t, 20, c.RowCount)
	assert.Equal(t, 100_000_000, c.ProbeIterations)
	assert.Equal(t, "admin", c.S3RootUser)
	assert.Equal(t, "secretpassword", c.S3RootPassword)
	assert.Empty(t, c.S3Bucket)
	assert.Equal(t, "us-east-1", c.S3Region)
	assert.Equal(t, "http://127.0.0.1:9000/", c.S3BaseEndpoint)
	assert.False(t, c.Debug)
	assert.False(t, c.ObjectStorageEnabled())
}

func TestLoad_DefaultsWithoutArgs(t *testing.T) {
	c, err := Load(nil)
	require.NoError(t, err)

	var want Config
	want.LoadDefaults()
	assert.Equal(t, &want, c)
}

func TestObjectStorageEnabled(t *testing.T) {
	c := &Config{S3Bucket: "exports"}
	assert.True(t, c.ObjectStorageEnabled())
}

func TestLoad(t *testing.T) {
	c, err := Load([]string{"-t", "sqlite", "-n", "7"})
	require.NoError(t, err)
	assert.Equal(t, "sqlite", c.DatabaseDriver)
	assert.Equal(t, 7, c.RowCount)
	assert.Equal(t, "data/data.csv", c.CSVPath)
}

func TestLoad_BadInputIsAnError(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "bad flag value", args: []string{"-n", "abc"}, want: `invalid value "abc" for flag -n`},
		{name: "missing config file", args: []string{"-c", filepath.Join(t.TempDir(), "nope.json")}, want: "no such file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Load(tt.args)
			require.Error(t, err)
			assert.Nil(t, c)
			assert.Contains(t, err.Error(), "config error: ")
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
