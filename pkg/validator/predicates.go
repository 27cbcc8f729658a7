package validator

import (
	"fmt"
	"math"
	"reflect"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Truthy reports whether v is present and non-zero: a non-empty string, a
// non-zero number (NaN is falsy), true, a non-empty slice or map, or any
// other non-nil value. Pointers and interfaces are followed.
func Truthy(v any) bool {
	rv, ok := indirect(v)
	if !ok {
		return false
	}

	switch rv.Kind() {
	case reflect.String:
		return rv.Len() > 0
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.Slice, reflect.Map:
		return rv.Len() > 0
	case reflect.Func, reflect.Chan:
		return !rv.IsNil()
	}
	return true
}

// IsPositive reports whether v is a number greater than zero.
// Non-numeric values are rejected with ErrTypeMismatch; numeric strings are not coerced.
func IsPositive(v any) (bool, error) {
	rv, ok := indirect(v)
	if !ok {
		return false, nil
	}

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return positive(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return positive(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		// NaN compares false against zero
		return positive(rv.Float()), nil
	}
	return false, fmt.Errorf("%w: positive on %s", ErrTypeMismatch, rv.Type())
}

// IsShorterThan reports whether v is a string with fewer than limit characters.
// Length is counted in runes of the NFC form, so composed and decomposed
// spellings of the same text measure the same.
func IsShorterThan(v any, limit int) (bool, error) {
	rv, ok := indirect(v)
	if !ok {
		return false, nil
	}
	if rv.Kind() != reflect.String {
		return false, fmt.Errorf("%w: maxlength on %s", ErrTypeMismatch, rv.Type())
	}
	return CharLen(rv.String()) < limit, nil
}

// CharLen returns the number of characters in s after NFC normalization.
func CharLen(s string) int {
	return utf8.RuneCountInString(norm.NFC.String(s))
}

func positive[T Numeric](n T) bool {
	return n > 0
}

// indirect unwraps pointers and interfaces. ok is false for nil at any level.
func indirect(v any) (reflect.Value, bool) {
	if v == nil {
		return reflect.Value{}, false
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return reflect.Value{}, false
		}
		rv = rv.Elem()
	}
	return rv, true
}
