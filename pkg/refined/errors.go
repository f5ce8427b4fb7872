package refined

import "errors"

var (
	// ErrConstraintViolation is matched by every *Violation via errors.Is.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrNotConstructed is the cause attached when a zero value wrapper is used.
	ErrNotConstructed = errors.New("refined value was not constructed")

	// ErrDecode is returned when input cannot be decoded into the wrapped type.
	ErrDecode = errors.New("failed to decode refined value")
)
