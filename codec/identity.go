package codec

import (
	anyparse "github.com/parsekit/anyparse"
)

// Identity returns the codec whose both directions return the value unchanged.
func Identity[T any]() Codec[T, T] {
	return Codec[T, T]{
		Decode: anyparse.Lift(func(v T) T { return v }),
		Encode: func(v T) (T, error) { return v, nil },
	}
}
