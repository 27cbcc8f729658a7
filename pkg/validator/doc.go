// Package validator defines the rule kinds a form field can carry, the
// predicates behind them, and the error types used to report failures.
//
// Three kinds exist: KindRequired, KindPositive and KindMaxLength. Kind is a
// closed string enumeration; external text is turned into a Kind with
// ParseKind, which rejects anything else with ErrUnknownKind.
//
// Predicates work on arbitrary values:
//
//   - required:  the value is present and truthy (non-empty string, non-zero
//     number, true, non-empty slice or map, any other non-nil value)
//   - positive:  the value is a Go number greater than zero
//   - maxlength: the value is a string shorter than MaxLength characters,
//     counted in runes of its NFC form
//
// A missing value fails every kind. Applying positive or maxlength to a value
// of the wrong type fails too, and Kind.Check additionally returns an error
// wrapping ErrTypeMismatch so callers can log it.
//
// # Error Handling
//
// Failures are collected as ValidationErrors, a slice of ValidationError that
// implements error. Apply aggregates a list of Rule values:
//
//	err := validator.Apply(
//	    validator.KindRequired.Rule("title", validator.Truthy(title)),
//	    validator.KindMaxLength.Rule("title", validator.CharLen(title) < validator.MaxLength),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, f := range verrs.Fields() { ... }
//	}
//
// errors.Is(err, ErrValidationFailed) holds for any ValidationErrors.
package validator
