package main

import (
	"github.com/dmitrymomot/formrules/pkg/ruleset"
)

// Course is the record a course form submits.
type Course struct {
	Title string   `form:"title" validate:"required,maxlength"`
	Price *float64 `form:"price" validate:"required,positive"`
}

// courseRules builds the registry for Course records, from the rule table at
// rulesFile when set, otherwise from the Course struct tags.
func courseRules(rulesFile string, opts ...ruleset.Option) (*ruleset.Registry, error) {
	reg := ruleset.NewRegistry(opts...)
	if rulesFile != "" {
		if err := ruleset.LoadFile(rulesFile, reg); err != nil {
			return nil, err
		}
		return reg, nil
	}
	if err := ruleset.RegisterStruct(reg, Course{}); err != nil {
		return nil, err
	}
	return reg, nil
}
