package refined

import (
	"bytes"
	"encoding/json"
	"errors"
	"iter"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/refined/pkg/constant"
)

// Vector is a sequence of exactly N elements.
//
// The input is copied at construction and Slice returns a copy, so no caller
// ever holds a reference through which the length could change.
type Vector[E any, N constant.Const[int]] struct {
	refined Refined[[]E, CountIs[E, EqualTo[int, N]]]
}

// NewVector copies elems and checks that there are exactly N of them.
func NewVector[N constant.Const[int], E any](elems []E) (Vector[E, N], error) {
	r, err := New[CountIs[E, EqualTo[int, N]]](slices.Clone(elems))
	if err != nil {
		return Vector[E, N]{}, err
	}
	return Vector[E, N]{refined: r}, nil
}

// MustVector is like NewVector but panics on a length mismatch.
func MustVector[N constant.Const[int], E any](elems []E) Vector[E, N] {
	v, err := NewVector[N](elems)
	if err != nil {
		panic(err)
	}
	return v
}

// Len returns the number of elements, which is always N.
func (v Vector[E, N]) Len() int {
	return len(v.refined.Unwrap())
}

// At returns the element at index i. It panics when i is out of range.
func (v Vector[E, N]) At(i int) E {
	return v.refined.Unwrap()[i]
}

// All iterates over index and element pairs in order.
func (v Vector[E, N]) All() iter.Seq2[int, E] {
	return slices.All(v.refined.Unwrap())
}

// Slice returns a copy of the elements.
func (v Vector[E, N]) Slice() []E {
	return slices.Clone(v.refined.Unwrap())
}

// IsValid reports whether v was produced by a successful construction.
func (v Vector[E, N]) IsValid() bool {
	return v.refined.IsValid()
}

func (v Vector[E, N]) Validate() error {
	return v.refined.Validate()
}

func (v Vector[E, N]) MarshalJSON() ([]byte, error) {
	return v.refined.MarshalJSON()
}

func (v *Vector[E, N]) UnmarshalJSON(data []byte) error {
	var elems []E
	if err := json.Unmarshal(data, &elems); err != nil {
		return errors.Join(ErrDecode, err)
	}
	return v.set(elems)
}

func (v Vector[E, N]) MarshalYAML() (any, error) {
	return v.refined.MarshalYAML()
}

func (v *Vector[E, N]) UnmarshalYAML(node *yaml.Node) error {
	var elems []E
	if err := node.Decode(&elems); err != nil {
		return errors.Join(ErrDecode, err)
	}
	return v.set(elems)
}

// MarshalText encodes the elements as a comma separated list, the form
// UnmarshalText reads. Elements whose text contains a comma do not round trip.
func (v Vector[E, N]) MarshalText() ([]byte, error) {
	if !v.refined.ok {
		return nil, notConstructed[[]E, CountIs[E, EqualTo[int, N]]]()
	}
	var out []byte
	for i, elem := range v.refined.value {
		text, err := encodeText(elem)
		if err != nil {
			return nil, err
		}
		if i > 0 {
			out = append(out, ',')
		}
		out = append(out, text...)
	}
	return out, nil
}

// String renders the comma separated form, or an empty string for the zero
// value.
func (v Vector[E, N]) String() string {
	text, err := v.MarshalText()
	if err != nil {
		return ""
	}
	return string(text)
}

// UnmarshalText decodes a comma separated list. Empty text is an empty list.
func (v *Vector[E, N]) UnmarshalText(text []byte) error {
	var elems []E
	if len(text) > 0 {
		for part := range bytes.SplitSeq(text, []byte(",")) {
			elem, err := decodeText[E](bytes.TrimSpace(part))
			if err != nil {
				return err
			}
			elems = append(elems, elem)
		}
	}
	return v.set(elems)
}

func (v *Vector[E, N]) set(elems []E) error {
	built, err := NewVector[N](elems)
	if err != nil {
		return err
	}
	*v = built
	return nil
}
