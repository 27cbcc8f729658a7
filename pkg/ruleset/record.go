package ruleset

import (
	"reflect"
	"strings"
)

// Record exposes field values by name. ok is false when the field is absent.
type Record interface {
	Lookup(field string) (value any, ok bool)
}

// RecordFunc adapts a plain function to Record.
type RecordFunc func(field string) (any, bool)

func (f RecordFunc) Lookup(field string) (any, bool) {
	return f(field)
}

// Map is a Record over decoded documents. Keys holding nil count as absent.
type Map map[string]any

func (m Map) Lookup(field string) (any, bool) {
	v, ok := m[field]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// Struct returns a Record reading the exported fields of a struct or a pointer
// to one. Field names come from the `form` tag, else the lower-cased Go name;
// `form:"-"` hides a field. Nil pointer fields count as absent. Embedded
// structs are not flattened. Anything that is not a struct yields a Record
// with no fields.
func Struct(v any) Record {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return Map(nil)
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return Map(nil)
	}
	return structRecord{v: rv, index: fieldIndex(rv.Type())}
}

type structRecord struct {
	v     reflect.Value
	index map[string]int
}

func (s structRecord) Lookup(field string) (any, bool) {
	i, ok := s.index[field]
	if !ok {
		return nil, false
	}
	fv := s.v.Field(i)
	if fv.Kind() == reflect.Pointer && fv.IsNil() {
		return nil, false
	}
	return fv.Interface(), true
}

// fieldIndex maps record field names to struct field indexes.
func fieldIndex(rt reflect.Type) map[string]int {
	index := make(map[string]int, rt.NumField())
	for i := range rt.NumField() {
		if name, ok := fieldName(rt.Field(i)); ok {
			index[name] = i
		}
	}
	return index
}

// fieldName resolves the record name of a struct field; ok is false for
// unexported, embedded and `form:"-"` fields.
func fieldName(sf reflect.StructField) (string, bool) {
	if !sf.IsExported() || sf.Anonymous {
		return "", false
	}
	tag := sf.Tag.Get("form")
	if tag == "-" {
		return "", false
	}
	if name, _, _ := strings.Cut(tag, ","); name != "" {
		return name, true
	}
	return strings.ToLower(sf.Name), true
}
