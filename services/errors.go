package services

import "errors"

// Sentinel errors the API layer maps to response codes. Services wrap them
// with context via fmt.Errorf("%w: ...").
var (
	// ErrNotFound marks a missing project, stage, client or secondary record.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized marks a caller acting outside their role or scope.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrDuplicate marks a uniqueness violation (member email, minute date).
	ErrDuplicate = errors.New("duplicate")
)
