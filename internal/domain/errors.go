package domain

import "errors"

// Domain errors (no external dependencies). Handlers map these to HTTP
// status codes; the store's not-found outcome is deliberately distinct from
// transient failures.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
)
