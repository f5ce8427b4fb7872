package logger

import (
	"log/slog"
	"strconv"

	"github.com/dmitrymomot/refined/pkg/refined"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

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

// Violation renders the outermost violation in err's chain under the key
// "violation", including its causes. It returns an empty Attr when err
// carries no violation.
func Violation(err error) slog.Attr {
	v := refined.AsViolation(err)
	if v == nil {
		return slog.Attr{}
	}
	return slog.Any("violation", v)
}

// Violations groups the per-field violations carried by err under the key
// "violations", one attribute per failing field. It returns an empty Attr
// when err carries no field violations.
func Violations(err error) slog.Attr {
	violations := refined.ExtractViolations(err)
	if violations.IsEmpty() {
		return slog.Attr{}
	}

	as := make([]slog.Attr, 0, len(violations))
	for _, fv := range violations {
		if a := Violation(fv.Err); !a.Equal(slog.Attr{}) {
			a.Key = fv.Field
			as = append(as, a)
			continue
		}
		as = append(as, slog.String(fv.Field, fv.Err.Error()))
	}
	return slog.Attr{Key: "violations", Value: slog.GroupValue(as...)}
}
