package refined

// Constraint is a stateless rule over values of type V.
//
// Implementations are zero-size struct types: the zero value of the type is
// the constraint, so a constraint can be named purely by its type and used as
// a type argument. Check returns nil when value satisfies the rule and a
// *Violation otherwise. Describe renders the rule for diagnostics.
type Constraint[V any] interface {
	Check(value V) error
	Describe() string
}

// Describe renders the description of the constraint type C.
func Describe[C Constraint[V], V any]() string {
	var c C
	return c.Describe()
}
