package refined

import "unicode/utf8"

// CountIs is satisfied by slices whose element count satisfies C.
// The violation raised by C for the count is returned unchanged.
type CountIs[E any, C Constraint[int]] struct{}

func (CountIs[E, C]) Check(value []E) error {
	var c C
	return c.Check(len(value))
}

func (CountIs[E, C]) Describe() string {
	var c C
	return "Collection.Count should be " + c.Describe()
}

// ForAll is satisfied by slices whose every element satisfies C.
// Elements are checked in index order and the first failure is returned.
type ForAll[E any, C Constraint[E]] struct{}

func (ForAll[E, C]) Check(value []E) error {
	var c C
	for _, elem := range value {
		if err := c.Check(elem); err != nil {
			return err
		}
	}
	return nil
}

func (ForAll[E, C]) Describe() string {
	var c C
	return "All elements in Collection should be " + c.Describe()
}

// LengthIs is satisfied by byte buffers whose length satisfies C.
type LengthIs[C Constraint[int]] struct{}

func (LengthIs[C]) Check(value []byte) error {
	var c C
	return c.Check(len(value))
}

func (LengthIs[C]) Describe() string {
	var c C
	return "Buffer.Length should be " + c.Describe()
}

// RuneCountIs is satisfied by strings whose rune count satisfies C.
type RuneCountIs[C Constraint[int]] struct{}

func (RuneCountIs[C]) Check(value string) error {
	var c C
	return c.Check(utf8.RuneCountInString(value))
}

func (RuneCountIs[C]) Describe() string {
	var c C
	return "String.Length should be " + c.Describe()
}
