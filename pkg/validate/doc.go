// Package validate connects refined values to go-playground/validator.
//
// Structs that mix refined fields with plain, tag-validated fields can check
// both in one pass. The refined tag asserts that a field was produced by a
// successful construction rather than left at its zero value:
//
//	type Signup struct {
//	    Email string                                    `validate:"required,email"`
//	    Age   refined.Refined[int, refined.Positive[int]] `validate:"refined"`
//	}
//
//	v := validate.New()
//	if err := validate.Struct(v, signup); err != nil {
//	    log.Warn("invalid signup", logger.Violations(err))
//	}
package validate
