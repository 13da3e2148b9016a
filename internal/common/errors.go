// Package common defines sentinel errors shared by the toolbox commands.
// Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrAlreadyExists = errors.New("already exists")

	// CSV input errors.
	ErrMissingHeader   = errors.New("missing header row")
	ErrMalformedRecord = errors.New("malformed record")

	// Configuration errors.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
	ErrStorageDisabled   = errors.New("object storage is not configured")
)
