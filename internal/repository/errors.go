package repository

import "errors"

// Domain-level errors I prefer to bubble up from repository implementations.
var (
	ErrNotFound = errors.New("not found")
	// ErrSnapshot marks a content snapshot that cannot be read or decoded.
	ErrSnapshot = errors.New("invalid content snapshot")
)
