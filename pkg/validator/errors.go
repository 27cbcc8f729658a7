package validator

import "errors"

var (
	// ErrValidationFailed is matched by every ValidationErrors value via errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	// ErrUnknownKind is returned when a rule kind name is not one of the supported kinds.
	ErrUnknownKind = errors.New("unknown rule kind")

	// ErrTypeMismatch is returned when a rule is applied to a value it cannot judge,
	// e.g. maxlength on a number.
	ErrTypeMismatch = errors.New("rule does not apply to value type")
)
