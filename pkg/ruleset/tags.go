package ruleset

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/dmitrymomot/formrules/pkg/validator"
)

// TagName is the struct tag holding a comma separated list of rule kinds.
const TagName = "validate"

// RegisterStruct registers the rules declared in the `validate` tags of a
// struct type, e.g.
//
//	type Course struct {
//	    Title string  `form:"title" validate:"required,maxlength"`
//	    Price float64 `form:"price" validate:"required,positive"`
//	}
//
// v may be a struct value or a pointer to one (a typed nil pointer works).
// Field names follow the same rules as Struct. All tags are parsed before
// anything is registered, so an unknown kind leaves reg untouched.
func RegisterStruct(reg *Registry, v any) error {
	rt := reflect.TypeOf(v)
	for rt != nil && rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}
	if rt == nil || rt.Kind() != reflect.Struct {
		return fmt.Errorf("%w: %T", ErrNotStruct, v)
	}

	type entry struct {
		field string
		kinds []validator.Kind
	}
	var entries []entry

	for i := range rt.NumField() {
		sf := rt.Field(i)
		tag, ok := sf.Tag.Lookup(TagName)
		if !ok || tag == "-" {
			continue
		}
		name, ok := fieldName(sf)
		if !ok {
			continue
		}

		var kinds []validator.Kind
		for part := range strings.SplitSeq(tag, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			kind, err := validator.ParseKind(part)
			if err != nil {
				return fmt.Errorf("%s.%s: %w", rt.Name(), sf.Name, err)
			}
			kinds = append(kinds, kind)
		}
		entries = append(entries, entry{field: name, kinds: kinds})
	}

	for _, e := range entries {
		for _, kind := range e.kinds {
			reg.Register(e.field, kind)
		}
	}
	return nil
}

// MustRegisterStruct is like RegisterStruct but panics on error.
// Meant for package level initialisation of record types.
func MustRegisterStruct(reg *Registry, v any) {
	if err := RegisterStruct(reg, v); err != nil {
		panic(fmt.Sprintf("ruleset: %v", err))
	}
}
