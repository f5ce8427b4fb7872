package refined

import (
	"bytes"
	"encoding/hex"
	"errors"

	"github.com/dmitrymomot/refined/pkg/constant"
)

// Bytes is a byte buffer of exactly N bytes, such as a key or a digest.
//
// Like Vector it copies on the way in and on the way out.
type Bytes[N constant.Const[int]] struct {
	refined Refined[[]byte, LengthIs[EqualTo[int, N]]]
}

// NewBytes copies b and checks that it is exactly N bytes long.
func NewBytes[N constant.Const[int]](b []byte) (Bytes[N], error) {
	r, err := New[LengthIs[EqualTo[int, N]]](bytes.Clone(b))
	if err != nil {
		return Bytes[N]{}, err
	}
	return Bytes[N]{refined: r}, nil
}

// BytesFromHex decodes a hex string into a Bytes of length N.
func BytesFromHex[N constant.Const[int]](s string) (Bytes[N], error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return Bytes[N]{}, errors.Join(ErrDecode, err)
	}
	return NewBytes[N](b)
}

// Len returns the buffer length, which is always N.
func (b Bytes[N]) Len() int {
	return len(b.refined.Unwrap())
}

// Bytes returns a copy of the buffer.
func (b Bytes[N]) Bytes() []byte {
	return bytes.Clone(b.refined.Unwrap())
}

// Equal reports whether both buffers hold the same bytes.
func (b Bytes[N]) Equal(other Bytes[N]) bool {
	return b.refined.ok == other.refined.ok && bytes.Equal(b.refined.value, other.refined.value)
}

// IsValid reports whether b was produced by a successful construction.
func (b Bytes[N]) IsValid() bool {
	return b.refined.IsValid()
}

func (b Bytes[N]) Validate() error {
	return b.refined.Validate()
}

// String returns the buffer as lowercase hex.
func (b Bytes[N]) String() string {
	if !b.refined.ok {
		return ""
	}
	return hex.EncodeToString(b.refined.value)
}

// MarshalText encodes the buffer as hex. JSON and YAML encoders use it too.
func (b Bytes[N]) MarshalText() ([]byte, error) {
	if !b.refined.ok {
		return nil, notConstructed[[]byte, LengthIs[EqualTo[int, N]]]()
	}
	out := make([]byte, hex.EncodedLen(len(b.refined.value)))
	hex.Encode(out, b.refined.value)
	return out, nil
}

// UnmarshalText decodes hex and checks the decoded length.
func (b *Bytes[N]) UnmarshalText(text []byte) error {
	built, err := BytesFromHex[N](string(text))
	if err != nil {
		return err
	}
	*b = built
	return nil
}
