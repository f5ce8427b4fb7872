package refined

import (
	"errors"
	"fmt"
	"strings"
)

// FieldViolation is a construction failure attributed to a named field.
type FieldViolation struct {
	Field string
	Err   error
}

// Violations collects field level construction failures.
type Violations []FieldViolation

func (ve Violations) Error() string {
	if len(ve) == 0 {
		return ErrConstraintViolation.Error()
	}

	parts := make([]string, 0, len(ve))
	for _, fv := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", fv.Field, fv.Err))
	}
	return "constraint violations: " + strings.Join(parts, "; ")
}

func (ve Violations) Unwrap() []error {
	errs := make([]error, 0, len(ve))
	for _, fv := range ve {
		errs = append(errs, fv.Err)
	}
	return errs
}

func (ve Violations) Is(target error) bool {
	return target == ErrConstraintViolation
}

func (ve *Violations) Add(field string, err error) {
	*ve = append(*ve, FieldViolation{Field: field, Err: err})
}

func (ve Violations) Has(field string) bool {
	for _, fv := range ve {
		if fv.Field == field {
			return true
		}
	}
	return false
}

// Get returns the messages recorded for field.
func (ve Violations) Get(field string) []string {
	var messages []string
	for _, fv := range ve {
		if fv.Field == field {
			messages = append(messages, fv.Err.Error())
		}
	}
	return messages
}

// GetViolations returns the *Violation values recorded for field.
func (ve Violations) GetViolations(field string) []*Violation {
	var out []*Violation
	for _, fv := range ve {
		if fv.Field != field {
			continue
		}
		if v := AsViolation(fv.Err); v != nil {
			out = append(out, v)
		}
	}
	return out
}

// Fields returns the distinct field names in insertion order.
func (ve Violations) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, fv := range ve {
		if !seen[fv.Field] {
			fields = append(fields, fv.Field)
			seen[fv.Field] = true
		}
	}
	return fields
}

func (ve Violations) IsEmpty() bool {
	return len(ve) == 0
}

// Rule constructs one refined value and reports the failure under Field.
type Rule struct {
	Field string
	build func() error
}

// RuleFunc adapts an arbitrary constructor call into a Rule.
//
//	refined.RuleFunc("codes", func() (err error) {
//	    rec.Codes, err = refined.NewVector[constant.Ten[int]](codes)
//	    return err
//	})
func RuleFunc(field string, fn func() error) Rule {
	return Rule{Field: field, build: fn}
}

// Field builds a Rule that constructs a Refined from value into dst.
// dst is only written when construction succeeds.
func Field[C Constraint[V], V any](field string, value V, dst *Refined[V, C]) Rule {
	return Rule{
		Field: field,
		build: func() error {
			r, err := New[C](value)
			if err != nil {
				return err
			}
			*dst = r
			return nil
		},
	}
}

// Apply runs every rule and returns the failures as Violations, or nil.
// Unlike a single construction it does not stop at the first failure.
func Apply(rules ...Rule) error {
	var violations Violations

	for _, rule := range rules {
		if rule.build == nil {
			continue
		}
		if err := rule.build(); err != nil {
			violations.Add(rule.Field, err)
		}
	}

	if violations.IsEmpty() {
		return nil
	}

	return violations
}

// ExtractViolations returns the Violations carried by err, or nil.
func ExtractViolations(err error) Violations {
	if err == nil {
		return nil
	}

	var violations Violations
	if errors.As(err, &violations) {
		return violations
	}

	return nil
}
