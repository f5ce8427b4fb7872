package refined

import "fmt"

// Refined holds a value of type V that satisfied the constraint C when it was
// constructed. There is no way to change the held value afterwards, so every
// consumer may rely on C without checking again.
//
// The zero value was never checked. It reports IsValid() == false and Unwrap
// panics on it.
type Refined[V any, C Constraint[V]] struct {
	value V
	ok    bool
}

// New checks value against C and wraps it on success.
//
// On failure the violation raised by C is returned as the Cause of a new
// *Violation that carries C's full description and the rendered value.
func New[C Constraint[V], V any](value V) (Refined[V, C], error) {
	var c C
	if err := c.Check(value); err != nil {
		return Refined[V, C]{}, wrapViolation(c.Describe(), value, err)
	}
	return Refined[V, C]{value: value, ok: true}, nil
}

// Must is like New but panics with the *Violation when value is rejected.
func Must[C Constraint[V], V any](value V) Refined[V, C] {
	r, err := New[C](value)
	if err != nil {
		panic(err)
	}
	return r
}

// Unwrap returns the held value. It panics if r is the zero value.
func (r Refined[V, C]) Unwrap() V {
	if !r.ok {
		panic(notConstructed[V, C]())
	}
	return r.value
}

// IsValid reports whether r was produced by a successful construction.
func (r Refined[V, C]) IsValid() bool {
	return r.ok
}

// Validate returns nil for constructed values and a *Violation caused by
// ErrNotConstructed for the zero value.
func (r Refined[V, C]) Validate() error {
	if !r.ok {
		return notConstructed[V, C]()
	}
	return nil
}

// String renders the held value, or an empty string for the zero value.
func (r Refined[V, C]) String() string {
	if !r.ok {
		return ""
	}
	return fmt.Sprint(r.value)
}

func wrapViolation(description string, value any, cause error) *Violation {
	rendered := fmt.Sprint(value)
	return &Violation{
		Constraint:     description,
		Value:          rendered,
		TranslationKey: KeyConstraint,
		TranslationValues: map[string]any{
			"constraint": description,
			"value":      rendered,
		},
		Cause: cause,
	}
}

func notConstructed[V any, C Constraint[V]]() *Violation {
	var c C
	return &Violation{
		Constraint:     c.Describe(),
		TranslationKey: KeyNotConstructed,
		Cause:          ErrNotConstructed,
	}
}
