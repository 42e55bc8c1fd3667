package entity

import (
	"errors"
)

// Sentinel errors shared across the usecase and repository layers.
// Handlers map them onto HTTP status codes.
var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("already exists")
	ErrValidation = errors.New("validation failed")
)
