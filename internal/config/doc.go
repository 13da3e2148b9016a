// Package config loads runtime configuration shared by the toolbox commands.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c or -config. Files ending in
//     .yaml or .yml are decoded as YAML, anything else as JSON.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-t string   database driver: pgx, mysql or sqlite
//	-d string   database DSN
//	-f string   CSV file path
//	-n int      number of rows the generator writes
//	-m int      number of squares the memory probe sums
//	-u string   S3 root user
//	-p string   S3 root password
//	-b string   S3 bucket (empty disables object storage)
//	-g string   S3 region
//	-e string   S3 base endpoint
//	-v          debug logging
//
// # File schema
//
//	{
//	  "database_driver": "sqlite",
//	  "database_dsn": "file:staff.db",
//	  "csv_path": "data/data.csv",
//	  "row_count": 20,
//	  "probe_iterations": 1000000,
//	  "s3_bucket": "exports",
//	  "debug": true
//	}
//
// Keys missing from the file leave the current value untouched.
//
// This package does not read environment variables.
package config
