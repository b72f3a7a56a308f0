package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidThesis indicates a Thesis failed validation.
	ErrInvalidThesis = errors.New("invalid thesis data")

	// ErrInvalidSummary indicates a Summary failed validation.
	ErrInvalidSummary = errors.New("invalid summary")
)
