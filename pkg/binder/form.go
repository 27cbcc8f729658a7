package binder

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Values binds form values into the struct pointed to by v.
//
// Supported struct tags:
//   - `form:"name"` binds to form field "name"
//   - `form:"-"`    skips the field
//
// Untagged exported fields bind to their lower-cased Go name. Supported types
// are string, bool, signed and unsigned integers, floats, pointers to those
// (left nil when the field is absent) and slices of those (multi-value or
// comma separated fields).
//
// Keys missing from values leave the field untouched. An empty value for a
// non-string field is treated as missing, the way an untouched number input
// arrives from a browser.
func Values(values map[string][]string, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("%w: got %T", ErrInvalidTarget, v)
	}
	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("%w: got %T", ErrInvalidTarget, v)
	}

	rt := rv.Type()
	for i := range rv.NumField() {
		field := rv.Field(i)
		sf := rt.Field(i)
		if !field.CanSet() || sf.Anonymous {
			continue
		}

		name, skip := parseFieldTag(sf)
		if skip {
			continue
		}

		fieldValues, ok := values[name]
		if !ok || len(fieldValues) == 0 {
			continue
		}
		if err := setFieldValue(field, sf.Type, fieldValues); err != nil {
			return fmt.Errorf("%w: field %s: %v", ErrInvalidForm, name, err)
		}
	}
	return nil
}

// Flatten converts a decoded document (YAML or JSON) into form values, the
// shape a browser would submit. Nil values are dropped; slices become
// multi-value fields; everything else is formatted as text.
func Flatten(doc map[string]any) map[string][]string {
	values := make(map[string][]string, len(doc))
	for key, raw := range doc {
		if raw == nil {
			continue
		}
		if items, ok := raw.([]any); ok {
			for _, item := range items {
				if item != nil {
					values[key] = append(values[key], formatValue(item))
				}
			}
			continue
		}
		values[key] = []string{formatValue(raw)}
	}
	return values
}

func formatValue(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case bool:
		return strconv.FormatBool(x)
	case fmt.Stringer:
		return x.String()
	}
	return strings.TrimSpace(fmt.Sprint(v))
}
