// Package apperr defines the sentinel errors shared across Cantor services.
package apperr

import "errors"

var (
	// ErrNotFound is returned when a referenced song, musician, or set list
	// id is absent from the catalog.
	ErrNotFound = errors.New("not found")
	// ErrValidation is returned when a required request field is missing or
	// malformed; the operation is aborted before the catalog is touched.
	ErrValidation = errors.New("validation failed")
	// ErrAlreadyExists is returned when a catalog entry with the same id is
	// registered twice.
	ErrAlreadyExists = errors.New("already exists")
)
