// Package codec provides bidirectional transformation between a wire
// representation A and a domain representation B, with the decode direction
// expressed as an anyparse parser so it carries the library's error model.
package codec

import (
	anyparse "github.com/parsekit/anyparse"
)

// Codec pairs a decoding parser with an encoding function. Decode runs under
// a fresh context via DecodeValue; Encode reports plain errors since no
// structural descent happens on the way out.
type Codec[A, B any] struct {
	Decode anyparse.Parser[A, B]
	Encode func(B) (A, error)
}

// DecodeValue applies the decode parser to a wire value.
func (c Codec[A, B]) DecodeValue(a A) (B, error) {
	return anyparse.Run(c.Decode, a)
}

// EncodeValue converts a domain value back to its wire form.
func (c Codec[A, B]) EncodeValue(b B) (A, error) {
	return c.Encode(b)
}
