// Package refined attaches composable, named constraints to values and
// produces wrappers that can only be constructed when the constraint holds.
//
// A Refined[V, C] is proof that its value satisfied the constraint C at the
// single point where it was created. Code that receives one can rely on the
// invariant instead of re-validating the value defensively.
//
// # Architecture
//
// Constraints are zero-size generic struct types implementing Constraint[V].
// Because they carry no data, a constraint is fully named by its type and is
// composed by passing constraint types as type arguments:
//
//   - Atomics: EqualTo, GreaterThan, LessThan (bounds from pkg/constant),
//     NonZero, Positive, Negative, Between.
//   - Combinators: And, Or, Not. They nest to any depth.
//   - Collections: CountIs and ForAll over slices, LengthIs over byte
//     buffers, RuneCountIs over strings.
//   - Strings: Matches (regular expression), UUID, UUIDVersion.
//
// Refined runs the check exactly once, in New. Vector and Bytes specialise it
// for sequences and buffers of a fixed length.
//
// Everything is stateless apart from a write-once cache of compiled patterns,
// so constraints and constructed values are safe to share between goroutines.
//
// # Usage
//
//	type Percent = refined.Refined[int, refined.And[int,
//	    refined.GreaterThan[int, constant.Zero[int]],
//	    refined.LessThan[int, constant.Hundred[int]],
//	]]
//
//	p, err := refined.New[refined.NonZero[int]](10)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(p.Unwrap()) // 10
//
//	codes, err := refined.NewVector[constant.Ten[int]](values)
//
// Several values can be built at once with Apply, which reports every failing
// field instead of stopping at the first:
//
//	err := refined.Apply(
//	    refined.Field("x", x, &rec.X),
//	    refined.Field("y", y, &rec.Y),
//	)
//
// # Error Handling
//
// Every failure is a *Violation. Atomic constraints raise bare violations that
// only carry the rendered value and a translation key. New wraps whatever the
// constraint raised in a violation holding the constraint's full description
// and keeps the original as Cause, so errors.As and Chain can reach the
// violation of the atomic that failed. All violations match
// ErrConstraintViolation with errors.Is.
//
// The zero value of Refined was never checked. IsValid reports false for it
// and Unwrap panics with a violation caused by ErrNotConstructed.
//
// # Encoding
//
// Refined, Vector and Bytes implement the JSON, YAML and text codecs. Decoding
// runs the constraint, so a config file, request body or environment variable
// that violates it is rejected while it is parsed.
package refined
