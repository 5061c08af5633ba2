package market

import "errors"

// Error kinds surfaced to callers. Messages are attached by wrapping, e.g.
// fmt.Errorf("%w: deal already active", ErrUnauthorized).
var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrConflict     = errors.New("conflict")
	ErrInvalidInput = errors.New("invalid input")
)
