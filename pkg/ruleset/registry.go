package ruleset

import (
	"context"
	"log/slog"
	"slices"

	"github.com/dmitrymomot/formrules/pkg/logger"
	"github.com/dmitrymomot/formrules/pkg/validator"
)

// Registry maps field names to the rule kinds registered for them and
// evaluates records against those rules.
//
// A Registry is populated first and read afterwards: every Register call must
// happen before the first Validate or Check. Once populated it may be shared
// by concurrent readers. Register itself is not safe for concurrent use.
type Registry struct {
	rules  map[string][]validator.Kind
	logger *slog.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for diagnostics. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRegistry creates an empty Registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		rules:  make(map[string][]validator.Kind),
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.With(logger.Component("ruleset"))
	return r
}

// Register appends kind to the rules of field, creating the entry if needed.
// Registering the same kind twice for a field is harmless.
func (r *Registry) Register(field string, kind validator.Kind) {
	if !kind.Valid() {
		// kept anyway: evaluation fails it and logs the reason
		r.logger.Warn("registering unknown rule kind", logger.Field(field), logger.Kind(kind.String()))
	}
	r.rules[field] = append(r.rules[field], kind)
}

// Rules returns a copy of the kinds registered for field, in registration order.
func (r *Registry) Rules(field string) []validator.Kind {
	return slices.Clone(r.rules[field])
}

// Fields returns the registered field names in sorted order.
func (r *Registry) Fields() []string {
	fields := make([]string, 0, len(r.rules))
	for f := range r.rules {
		fields = append(fields, f)
	}
	slices.Sort(fields)
	return fields
}

// Len returns the number of fields with at least one rule.
func (r *Registry) Len() int {
	return len(r.rules)
}

// Validate reports whether rec satisfies every registered rule.
// An empty registry accepts every record; fields without rules are never looked at.
func (r *Registry) Validate(rec Record) bool {
	return r.CheckContext(context.Background(), rec) == nil
}

// Check is like Validate but returns the failed rules as validator.ValidationErrors,
// or nil when rec is valid.
func (r *Registry) Check(rec Record) error {
	return r.CheckContext(context.Background(), rec)
}

// CheckContext is Check with a context for the diagnostic log records.
// Violations are ordered by field name, then by registration order.
func (r *Registry) CheckContext(ctx context.Context, rec Record) error {
	if rec == nil {
		rec = Map(nil)
	}

	checks := make([]validator.Rule, 0, len(r.rules))
	for _, field := range r.Fields() {
		value, present := rec.Lookup(field)
		for _, kind := range r.rules[field] {
			ok, err := kind.Check(value, present)
			if err != nil {
				r.logger.DebugContext(ctx, "rule not applicable",
					logger.Field(field),
					logger.Kind(kind.String()),
					logger.Error(err),
				)
			}
			checks = append(checks, kind.Rule(field, ok))
		}
	}

	if err := validator.Apply(checks...); err != nil {
		r.logger.DebugContext(ctx, "record rejected", logger.Error(err))
		return err
	}
	return nil
}
