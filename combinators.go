package anyparse

// Map applies p and then the pure function fn to its result. fn is assumed
// total; it is not given a Ctx and cannot fail through the library's error
// model.
func Map[T, M, U any](p Parser[T, M], fn func(M) U) Parser[T, U] {
	return mapParser[T, M, U]{inner: p, fn: fn}
}

type mapParser[T, M, U any] struct {
	inner Parser[T, M]
	fn    func(M) U
}

func (m mapParser[T, M, U]) Parse(v T, c Ctx) (U, error) {
	r, err := m.inner.Parse(v, c)
	if err != nil {
		var zero U
		return zero, err
	}
	return m.fn(r), nil
}

// Lift wraps an ordinary total function as a parser that ignores the context
// and never fails on its own.
func Lift[T, U any](fn func(T) U) Parser[T, U] {
	return liftParser[T, U]{fn: fn}
}

type liftParser[T, U any] struct {
	fn func(T) U
}

func (l liftParser[T, U]) Parse(v T, _ Ctx) (U, error) { return l.fn(v), nil }

// Compose pipes the output of a into b, threading the same context through
// both. Composition is associative: Compose(Compose(a, b), c) behaves exactly
// like Compose(a, Compose(b, c)).
func Compose[T, M, U any](a Parser[T, M], b Parser[M, U]) Parser[T, U] {
	return composeParser[T, M, U]{first: a, second: b}
}

type composeParser[T, M, U any] struct {
	first  Parser[T, M]
	second Parser[M, U]
}

func (p composeParser[T, M, U]) Parse(v T, c Ctx) (U, error) {
	m, err := p.first.Parse(v, c)
	if err != nil {
		var zero U
		return zero, err
	}
	return p.second.Parse(m, c)
}
