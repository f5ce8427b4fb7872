package refined

import (
	"cmp"
	"fmt"

	"github.com/dmitrymomot/refined/pkg/constant"
)

// EqualTo is satisfied by values that compare equal to the constant C.
type EqualTo[V cmp.Ordered, C constant.Const[V]] struct{}

func (EqualTo[V, C]) Check(value V) error {
	var c C
	bound := c.Value()
	if cmp.Compare(value, bound) != 0 {
		return newViolation(value, KeyEqualTo, map[string]any{"bound": bound})
	}
	return nil
}

func (EqualTo[V, C]) Describe() string {
	var c C
	return fmt.Sprintf("equal to %v", c.Value())
}

// GreaterThan is satisfied by values strictly greater than the constant C.
type GreaterThan[V cmp.Ordered, C constant.Const[V]] struct{}

func (GreaterThan[V, C]) Check(value V) error {
	var c C
	bound := c.Value()
	if cmp.Compare(value, bound) <= 0 {
		return newViolation(value, KeyGreaterThan, map[string]any{"bound": bound})
	}
	return nil
}

func (GreaterThan[V, C]) Describe() string {
	var c C
	return fmt.Sprintf("greater than %v", c.Value())
}

// LessThan is satisfied by values strictly less than the constant C.
type LessThan[V cmp.Ordered, C constant.Const[V]] struct{}

func (LessThan[V, C]) Check(value V) error {
	var c C
	bound := c.Value()
	if cmp.Compare(value, bound) >= 0 {
		return newViolation(value, KeyLessThan, map[string]any{"bound": bound})
	}
	return nil
}

func (LessThan[V, C]) Describe() string {
	var c C
	return fmt.Sprintf("less than %v", c.Value())
}

// NonZero rejects zero and accepts every other value, negatives included.
type NonZero[V constant.Number] struct {
	Not[V, EqualTo[V, constant.Zero[V]]]
}

// Positive is satisfied by values greater than zero.
type Positive[V constant.Number] struct {
	GreaterThan[V, constant.Zero[V]]
}

// Negative is satisfied by values less than zero.
type Negative[V constant.Number] struct {
	LessThan[V, constant.Zero[V]]
}

// Between is satisfied by values strictly between Lo and Hi.
type Between[V cmp.Ordered, Lo constant.Const[V], Hi constant.Const[V]] struct {
	And[V, GreaterThan[V, Lo], LessThan[V, Hi]]
}
