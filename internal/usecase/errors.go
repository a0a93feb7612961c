package usecase

import "errors"

// Sentinel errors the HTTP layer maps onto response codes. ErrNotReady
// covers every window where the snapshot or table has not been populated
// yet.
var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrNotReady              = errors.New("snapshot not ready")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
