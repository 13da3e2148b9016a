package config

import "fmt"

// Config holds runtime settings for every toolbox command. Each command only
// reads the fields it needs.
type Config struct {
	DatabaseDriver  string
	DatabaseDSN     string
	CSVPath         string
	RowCount        int
	ProbeIterations int
	S3RootUser      string
	S3RootPassword  string
	S3Bucket        string
	S3Region        string
	S3BaseEndpoint  string
	Debug           bool
}

// LoadDefaults points the commands at the containerized staff database.
// NOTE: the credentials are development values and should be overridden.
func (c *Config) LoadDefaults() {
	c.DatabaseDriver = "pgx"
	c.DatabaseDSN = "postgres://jack:jackroot@db:5432/staff?sslmode=disable"
	c.CSVPath = "data/data.csv"
	c.RowCount = 20
	c.ProbeIterations = 100_000_000
	c.S3RootUser = "admin"
	c.S3RootPassword = "secretpassword"
	c.S3Bucket = ""
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = "http://127.0.0.1:9000/"
	c.Debug = false
}

// ObjectStorageEnabled reports whether a bucket was configured.
func (c *Config) ObjectStorageEnabled() bool {
	return c.S3Bucket != ""
}

// Load applies defaults, then the optional config file named in args, then
// the flags in args. The parsers panic on bad input; Load turns that into an
// error.
func Load(args []string) (cfg *Config, err error) {
	defer func() {
		if r := recover(); r != nil {
			cfg, err = nil, fmt.Errorf("config error: %v", r)
		}
	}()

	cfg = &Config{}
	cfg.LoadDefaults()
	parseFile(cfg, args)
	parseFlags(cfg, args)
	return cfg, nil
}
