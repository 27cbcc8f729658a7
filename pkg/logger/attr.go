package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Field records a record field name under the key "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Kind records a rule kind under the key "rule".
func Kind(kind string) slog.Attr {
	return slog.String("rule", kind)
}

// Record records the position of a record in its batch under the key "record".
func Record(index int) slog.Attr {
	return slog.Int("record", index)
}
