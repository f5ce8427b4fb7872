package refined

// And is satisfied when both L and R are. L is checked first and its
// violation is returned as is; R is not evaluated in that case.
type And[V any, L Constraint[V], R Constraint[V]] struct{}

func (And[V, L, R]) Check(value V) error {
	var l L
	if err := l.Check(value); err != nil {
		return err
	}
	var r R
	return r.Check(value)
}

func (And[V, L, R]) Describe() string {
	var l L
	var r R
	return l.Describe() + " and " + r.Describe()
}

// Or is satisfied when either L or R is. R is only evaluated when L fails,
// and when both fail only R's violation is returned.
type Or[V any, L Constraint[V], R Constraint[V]] struct{}

func (Or[V, L, R]) Check(value V) error {
	var l L
	if err := l.Check(value); err == nil {
		return nil
	}
	var r R
	return r.Check(value)
}

func (Or[V, L, R]) Describe() string {
	var l L
	var r R
	return l.Describe() + " or " + r.Describe()
}

// Not is satisfied when X is not. The violation of X is discarded.
type Not[V any, X Constraint[V]] struct{}

func (Not[V, X]) Check(value V) error {
	var x X
	if err := x.Check(value); err != nil {
		return nil
	}
	return newViolation(value, KeyNot, nil)
}

func (Not[V, X]) Describe() string {
	var x X
	return "not " + x.Describe()
}
