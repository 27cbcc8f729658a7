// Package ruleset keeps a registry of field rules and checks records against it.
//
// A Registry maps field names to the validator.Kind values registered for
// them. Rules are added before any record is checked, either one by one with
// Register, from `validate` struct tags with RegisterStruct, or from a YAML or
// JSON rule table with Load:
//
//	reg := ruleset.NewRegistry(ruleset.WithLogger(log))
//	ruleset.MustRegisterStruct(reg, Course{})
//
//	if !reg.Validate(ruleset.Struct(course)) {
//	    // reject the submission
//	}
//
// Validate returns a single verdict. Check returns the failed rules as
// validator.ValidationErrors. Fields without rules are never read. A field the
// record does not have fails all of its rules. A rule that cannot judge the
// value's type fails as well and is logged at debug level.
//
// Records are anything implementing Record. Map covers decoded documents and
// Struct covers tagged structs.
package ruleset
