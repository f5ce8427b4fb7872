package constant

// Number permits every built-in integer and floating point type.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Const is a type whose zero value names a fixed value of type T.
type Const[T any] interface {
	Value() T
}

// Zero is the constant 0.
type Zero[T Number] struct{}

func (Zero[T]) Value() T { return T(0) }

// One is the constant 1.
type One[T Number] struct{}

func (One[T]) Value() T { return T(1) }

// Ten is the constant 10.
type Ten[T Number] struct{}

func (Ten[T]) Value() T { return T(10) }

// Sixteen is the constant 16.
type Sixteen[T Number] struct{}

func (Sixteen[T]) Value() T { return T(16) }

// Twenty is the constant 20.
type Twenty[T Number] struct{}

func (Twenty[T]) Value() T { return T(20) }

// ThirtyTwo is the constant 32.
type ThirtyTwo[T Number] struct{}

func (ThirtyTwo[T]) Value() T { return T(32) }

// SixtyFour is the constant 64.
type SixtyFour[T Number] struct{}

func (SixtyFour[T]) Value() T { return T(64) }

// Hundred is the constant 100.
type Hundred[T Number] struct{}

func (Hundred[T]) Value() T { return T(100) }

// Add is the sum of the constants L and R.
type Add[T Number, L Const[T], R Const[T]] struct{}

func (Add[T, L, R]) Value() T {
	var l L
	var r R
	return l.Value() + r.Value()
}

// Sub is the difference of the constants L and R.
// Unsigned types wrap around when R is greater than L.
type Sub[T Number, L Const[T], R Const[T]] struct{}

func (Sub[T, L, R]) Value() T {
	var l L
	var r R
	return l.Value() - r.Value()
}
