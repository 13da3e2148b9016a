package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/toolbox/internal/flagx"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk shape of a config file. Pointer fields tell an
// absent key apart from an explicit zero value.
type FileConfig struct {
	DatabaseDriver  *string `json:"database_driver" yaml:"database_driver"`
	DatabaseDSN     *string `json:"database_dsn" yaml:"database_dsn"`
	CSVPath         *string `json:"csv_path" yaml:"csv_path"`
	RowCount        *int    `json:"row_count" yaml:"row_count"`
	ProbeIterations *int    `json:"probe_iterations" yaml:"probe_iterations"`
	S3RootUser      *string `json:"s3_root_user" yaml:"s3_root_user"`
	S3RootPassword  *string `json:"s3_root_password" yaml:"s3_root_password"`
	S3Bucket        *string `json:"s3_bucket" yaml:"s3_bucket"`
	S3Region        *string `json:"s3_region" yaml:"s3_region"`
	S3BaseEndpoint  *string `json:"s3_base_endpoint" yaml:"s3_base_endpoint"`
	Debug           *bool   `json:"debug" yaml:"debug"`
}

// parseFile overlays cfg with the file named by -c/-config, if any.
// It panics when the file cannot be read or decoded.
func parseFile(cfg *Config, args []string) {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		panic(err)
	}

	fc.apply(cfg)
}

func (fc *FileConfig) apply(cfg *Config) {
	setString(&cfg.DatabaseDriver, fc.DatabaseDriver)
	setString(&cfg.DatabaseDSN, fc.DatabaseDSN)
	setString(&cfg.CSVPath, fc.CSVPath)
	setString(&cfg.S3RootUser, fc.S3RootUser)
	setString(&cfg.S3RootPassword, fc.S3RootPassword)
	setString(&cfg.S3Bucket, fc.S3Bucket)
	setString(&cfg.S3Region, fc.S3Region)
	setString(&cfg.S3BaseEndpoint, fc.S3BaseEndpoint)

	if fc.RowCount != nil {
		cfg.RowCount = *fc.RowCount
	}
	if fc.ProbeIterations != nil {
		cfg.ProbeIterations = *fc.ProbeIterations
	}
	if fc.Debug != nil {
		cfg.Debug = *fc.Debug
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
