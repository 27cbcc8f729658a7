// Package logger builds *slog.Logger values from functional options and
// provides the attribute helpers used across the module, so keys such as
// "component", "field" and "rule" are spelled the same everywhere.
//
//	log := logger.New(
//	    logger.WithDevelopment("coursecheck"),
//	    logger.WithContextValue("run_id", runIDKey{}),
//	)
//	log.DebugContext(ctx, "rule not applicable", logger.Field("title"), logger.Error(err))
//
// Context values registered with WithContextValue or WithContextExtractors are
// read on every log call, so request or run scoped identifiers show up without
// building a new logger.
//
// Error returns an empty attribute for a nil error, which slog drops, so it
// can be passed unconditionally.
package logger
