// Package constant provides named, type-parameterised constants that can be
// used as type arguments.
//
// Go generics accept types, not values, as type parameters. A constraint such
// as "greater than 10" therefore needs the bound 10 expressed as a type. This
// package supplies that encoding: every constant is a zero-size struct whose
// Value method returns a fixed value of the requested type.
//
// # Architecture
//
//   - Const[T]: the capability: a type whose zero value yields a T.
//   - Number: type set of every built-in integer and float kind.
//   - Zero, One, Ten, Twenty, Sixteen, ThirtyTwo, SixtyFour, Hundred: ready
//     made numeric constants, generic over any Number type.
//   - Add, Sub: constants computed from two other constants.
//
// Constants hold no state; Value is pure and returns the same result every
// time, so they are safe to share between goroutines.
//
// # Usage
//
//	type GreaterThanTen = refined.GreaterThan[int, constant.Ten[int]]
//
//	var ten constant.Ten[float64]
//	fmt.Println(ten.Value()) // 10
//
// Custom bounds are declared as tiny named types:
//
//	type MaxPort struct{}
//
//	func (MaxPort) Value() int { return 65535 }
//
// # Composition
//
// Add and Sub combine constants of the same type:
//
//	var n constant.Add[int, constant.Ten[int], constant.One[int]]
//	n.Value() // 11
package constant
