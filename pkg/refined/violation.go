package refined

import (
	"errors"
	"fmt"
	"log/slog"
)

// Translation keys attached to violations. Message catalogs can key on them
// to render localized text.
const (
	KeyConstraint     = "refined.constraint"
	KeyEqualTo        = "refined.equal_to"
	KeyGreaterThan    = "refined.greater_than"
	KeyLessThan       = "refined.less_than"
	KeyNot            = "refined.not"
	KeyPattern        = "refined.pattern"
	KeyUUID           = "refined.uuid"
	KeyUUIDVersion    = "refined.uuid_version"
	KeyNotConstructed = "refined.not_constructed"
)

// Violation describes a value that failed a constraint.
//
// Violations raised by atomic constraints are bare: Constraint is empty and
// only Value and the translation metadata are set. The wrapper constructor
// re-raises them with the full description and keeps the original as Cause.
type Violation struct {
	Constraint        string
	Value             string
	TranslationKey    string
	TranslationValues map[string]any
	Cause             error
}

func newViolation(value any, key string, values map[string]any) *Violation {
	return &Violation{
		Value:             fmt.Sprint(value),
		TranslationKey:    key,
		TranslationValues: values,
	}
}

func (v *Violation) Error() string {
	switch {
	case v.Cause == ErrNotConstructed:
		return fmt.Sprintf("%s: '%s'", ErrNotConstructed, v.Constraint)
	case v.Constraint != "":
		return fmt.Sprintf("constraint not satisfied: '%s' by value: '%s'", v.Constraint, v.Value)
	case v.Value != "":
		return fmt.Sprintf("constraint violated by value: '%s'", v.Value)
	default:
		return ErrConstraintViolation.Error()
	}
}

func (v *Violation) Unwrap() error {
	return v.Cause
}

func (v *Violation) Is(target error) bool {
	return target == ErrConstraintViolation
}

// LogValue renders the violation and its causes as a nested slog group.
func (v *Violation) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, 4)
	if v.Constraint != "" {
		attrs = append(attrs, slog.String("constraint", v.Constraint))
	}
	attrs = append(attrs, slog.String("value", v.Value))
	if v.TranslationKey != "" {
		attrs = append(attrs, slog.String("key", v.TranslationKey))
	}
	if v.Cause != nil {
		var inner *Violation
		if errors.As(v.Cause, &inner) {
			attrs = append(attrs, slog.Any("cause", inner))
		} else {
			attrs = append(attrs, slog.String("cause", v.Cause.Error()))
		}
	}
	return slog.GroupValue(attrs...)
}

// AsViolation returns the outermost *Violation in err's chain, or nil.
func AsViolation(err error) *Violation {
	if err == nil {
		return nil
	}
	var v *Violation
	if errors.As(err, &v) {
		return v
	}
	return nil
}

// IsViolation reports whether err carries a constraint violation.
func IsViolation(err error) bool {
	return errors.Is(err, ErrConstraintViolation)
}

// Chain lists the violations in err's cause chain, outermost first.
func Chain(err error) []*Violation {
	var chain []*Violation
	for v := AsViolation(err); v != nil; v = AsViolation(v.Cause) {
		chain = append(chain, v)
	}
	return chain
}
