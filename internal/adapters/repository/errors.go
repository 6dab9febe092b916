package repository

import "errors"

// Sentinel kinds for repository errors.
var (
	ErrNotFound     = errors.New("neighborhood not found")
	ErrInvalidQuery = errors.New("invalid query")
)
