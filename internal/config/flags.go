package config

import (
	"flag"

	"github.com/dmitrijs2005/toolbox/internal/flagx"
)

// parseFlags populates Config fields from command-line flags. Only the flags
// listed in the package documentation are considered; everything else in args
// is left for other parsers. It panics on invalid values.
func parseFlags(cfg *Config, args []string) {
	filtered := flagx.FilterArgs(args,
		[]string{"-t", "-d", "-f", "-n", "-m", "-u", "-p", "-b", "-g", "-e"},
		"-v")

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDriver, "t", cfg.DatabaseDriver, "database driver (pgx, mysql, sqlite)")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN")
	fs.StringVar(&cfg.CSVPath, "f", cfg.CSVPath, "CSV file path")
	fs.IntVar(&cfg.RowCount, "n", cfg.RowCount, "number of generated rows")
	fs.IntVar(&cfg.ProbeIterations, "m", cfg.ProbeIterations, "number of squares summed by the memory probe")

	fs.StringVar(&cfg.S3RootUser, "u", cfg.S3RootUser, "S3 root user")
	fs.StringVar(&cfg.S3RootPassword, "p", cfg.S3RootPassword, "S3 root password")
	fs.StringVar(&cfg.S3Bucket, "b", cfg.S3Bucket, "S3 bucket")
	fs.StringVar(&cfg.S3Region, "g", cfg.S3Region, "S3 region")
	fs.StringVar(&cfg.S3BaseEndpoint, "e", cfg.S3BaseEndpoint, "S3 base endpoint")

	fs.BoolVar(&cfg.Debug, "v", cfg.Debug, "debug logging")

	if err := fs.Parse(filtered); err != nil {
		panic(err)
	}
}
