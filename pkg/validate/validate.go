package validate

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/dmitrymomot/refined/pkg/refined"
)

// Tag is the struct tag that requires a refined field to be constructed.
const Tag = "refined"

// constructed is implemented by refined.Refined, refined.Vector and
// refined.Bytes.
type constructed interface {
	Validate() error
}

// New returns a validator with the refined tag registered.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Registration only fails for an empty tag or a nil func.
	_ = Register(v)
	return v
}

// Register adds the refined tag to v. A tagged field passes when it holds a
// successfully constructed refined value. Fields of any other type fail.
func Register(v *validator.Validate) error {
	return v.RegisterValidation(Tag, isConstructed)
}

func isConstructed(fl validator.FieldLevel) bool {
	field := fl.Field()
	if !field.CanInterface() {
		return false
	}
	c, ok := field.Interface().(constructed)
	return ok && c.Validate() == nil
}

// Struct validates s and reports failures as refined.Violations keyed by the
// field namespace. Failures of the refined tag carry the *refined.Violation
// of the unconstructed field; failures of other tags carry the
// validator.FieldError.
func Struct(v *validator.Validate, s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	var violations refined.Violations
	for _, fe := range fieldErrs {
		violations.Add(fe.Namespace(), fieldError(fe))
	}
	return violations
}

func fieldError(fe validator.FieldError) error {
	if fe.Tag() != Tag {
		return fe
	}
	if c, ok := fe.Value().(constructed); ok {
		if err := c.Validate(); err != nil {
			return err
		}
	}
	return fe
}
