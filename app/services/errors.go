package services

import "errors"

var (
	// ErrValidation wraps a rejected post or update payload.
	ErrValidation = errors.New("validation failed")
	// ErrSearchQueryRequired is returned when the search endpoint is
	// called without a query.
	ErrSearchQueryRequired = errors.New("search query is required")
)
