// Package binder turns raw form input into typed record structs.
//
// Values binds a map of form values (the shape of url.Values) into a struct
// using `form` tags, converting text to the field types. Flatten produces that
// map from a decoded YAML or JSON document, so files and form submissions go
// through the same conversion.
//
//	var c Course
//	if err := binder.Values(binder.Flatten(doc), &c); err != nil {
//	    // errors.Is(err, binder.ErrInvalidForm)
//	}
//
// Pointer fields stay nil when their key is absent, which lets the rule
// registry tell a missing value from a zero one.
package binder
