package history

import "errors"

var (
	// ErrNotFound is returned when no run matches the requested identifier.
	ErrNotFound = errors.New("run not found")
	// ErrAmbiguousID is returned when an identifier prefix matches several runs.
	ErrAmbiguousID = errors.New("run id prefix is ambiguous")
	// ErrSchemaMismatch indicates the database schema version doesn't match the expected version.
	ErrSchemaMismatch = errors.New("schema version mismatch")
)
