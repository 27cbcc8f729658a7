package ruleset

import "errors"

var (
	// ErrNotStruct is returned by RegisterStruct when the value is not a struct or a pointer to one.
	ErrNotStruct = errors.New("value is not a struct")

	// ErrInvalidRuleTable is returned when a rule table cannot be decoded.
	ErrInvalidRuleTable = errors.New("invalid rule table")
)
