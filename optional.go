package anyparse

import "fmt"

// Optional passes the Absent sentinel through without invoking p; any other
// input is delegated to p, failures included. Combined with Object this is
// how "key may be missing" is expressed: the field stays absent and is
// omitted from the output record.
func Optional[U any](p Parser[any, U]) Parser[any, any] {
	return optionalParser[U]{inner: p}
}

type optionalParser[U any] struct {
	inner Parser[any, U]
}

func (o optionalParser[U]) Parse(v any, c Ctx) (any, error) {
	if IsAbsent(v) {
		return Absent, nil
	}
	u, err := o.inner.Parse(v, c)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// Nullable passes explicit null (untyped nil) through without invoking p;
// any other input is delegated to p.
func Nullable[U any](p Parser[any, U]) Parser[any, any] {
	return nullableParser[U]{inner: p}
}

type nullableParser[U any] struct {
	inner Parser[any, U]
}

func (n nullableParser[U]) Parse(v any, c Ctx) (any, error) {
	if v == nil {
		return nil, nil
	}
	u, err := n.inner.Parse(v, c)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// Default invokes p and replaces an absent or null result with def; a present
// result is returned unchanged. p's failures are forwarded. Use DefaultFunc
// when the default should be computed on demand.
func Default[U any](p Parser[any, any], def U) Parser[any, U] {
	return defaultParser[U]{inner: p, supply: func() U { return def }}
}

// DefaultFunc is Default with a zero-argument supplier invoked only when the
// result is absent or null.
func DefaultFunc[U any](p Parser[any, any], supply func() U) Parser[any, U] {
	return defaultParser[U]{inner: p, supply: supply}
}

type defaultParser[U any] struct {
	inner  Parser[any, any]
	supply func() U
}

func (d defaultParser[U]) Parse(v any, c Ctx) (U, error) {
	r, err := d.inner.Parse(v, c)
	if err != nil {
		var zero U
		return zero, err
	}
	if IsAbsent(r) || r == nil {
		return d.supply(), nil
	}
	u, ok := r.(U)
	if !ok {
		var zero U
		return zero, typeError(r, fmt.Sprintf("of type %T", zero), c)
	}
	return u, nil
}
