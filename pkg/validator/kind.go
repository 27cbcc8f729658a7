package validator

import (
	"fmt"
	"strings"
)

// Kind names one of the fixed rule predicates.
type Kind string

const (
	// KindRequired passes when the value is present and truthy.
	KindRequired Kind = "required"
	// KindPositive passes when the value is a number greater than zero.
	KindPositive Kind = "positive"
	// KindMaxLength passes when the value is a string shorter than MaxLength characters.
	KindMaxLength Kind = "maxlength"
)

// MaxLength is the exclusive upper bound applied by KindMaxLength.
const MaxLength = 5

// Kinds returns every supported rule kind.
func Kinds() []Kind {
	return []Kind{KindRequired, KindPositive, KindMaxLength}
}

// ParseKind converts external text (struct tags, rule tables) into a Kind.
// Surrounding whitespace and letter case are ignored.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if !k.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
	return k, nil
}

func (k Kind) Valid() bool {
	switch k {
	case KindRequired, KindPositive, KindMaxLength:
		return true
	}
	return false
}

func (k Kind) String() string {
	return string(k)
}

// Check applies the predicate bound to k. present reports whether the record
// carried the field at all; a missing field fails every kind.
// A non-nil error (wrapping ErrTypeMismatch or ErrUnknownKind) always comes
// with false and is meant for diagnostics only.
func (k Kind) Check(value any, present bool) (bool, error) {
	if !k.Valid() {
		return false, fmt.Errorf("%w: %q", ErrUnknownKind, string(k))
	}
	if !present {
		return false, nil
	}

	switch k {
	case KindRequired:
		return Truthy(value), nil
	case KindPositive:
		return IsPositive(value)
	default:
		return IsShorterThan(value, MaxLength)
	}
}

// Message returns the human readable failure message for k.
func (k Kind) Message() string {
	switch k {
	case KindRequired:
		return "field is required"
	case KindPositive:
		return "must be a positive number"
	case KindMaxLength:
		return fmt.Sprintf("must be shorter than %d characters", MaxLength)
	}
	return "invalid value"
}

// Violation builds the ValidationError reported when k fails on field.
func (k Kind) Violation(field string) ValidationError {
	return ValidationError{
		Field:   field,
		Kind:    k,
		Message: k.Message(),
	}
}

// Rule adapts an already computed outcome into a Rule so it can be passed to Apply.
func (k Kind) Rule(field string, ok bool) Rule {
	return Rule{
		Check: func() bool { return ok },
		Error: k.Violation(field),
	}
}
