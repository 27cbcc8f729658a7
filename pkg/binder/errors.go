package binder

import "errors"

var (
	// ErrInvalidTarget is returned when the bind target is not a non-nil pointer to a struct.
	ErrInvalidTarget = errors.New("bind target must be a non-nil pointer to struct")

	// ErrInvalidForm is returned when a form value cannot be converted to its field type.
	ErrInvalidForm = errors.New("invalid form data")
)
