package anyparse

// Parser is a stateless transformation from an input value of type T to an
// output value of type U, or an *Error annotated with the location context.
// Parsers hold no mutable state: build them once, share them freely, compose
// them with the combinators in this package.
type Parser[T, U any] interface {
	Parse(v T, c Ctx) (U, error)
}

// ParserFunc adapts an ordinary function to the Parser interface.
type ParserFunc[T, U any] func(v T, c Ctx) (U, error)

func (f ParserFunc[T, U]) Parse(v T, c Ctx) (U, error) { return f(v, c) }

// Run is the entry point of a parse: it creates a fresh empty context and
// applies p to v. All context threading below this call is internal.
func Run[T, U any](p Parser[T, U], v T) (U, error) {
	return p.Parse(v, NewCtx())
}

// absentValue is the sentinel type behind Absent.
type absentValue struct{}

func (absentValue) String() string { return "<absent>" }

// Absent marks a value that was not supplied at all, as opposed to an explicit
// null (untyped nil). Object feeds it to field parsers for missing keys and
// omits fields whose parser returns it; Optional passes it through untouched.
// Together with nil this realizes the Present/Null/Absent tri-state.
var Absent any = absentValue{}

// IsAbsent reports whether v is the Absent sentinel.
func IsAbsent(v any) bool {
	_, ok := v.(absentValue)
	return ok
}

// Of erases a typed parser to Parser[any, any] so parsers with different
// output types can share an Object field map or an Alt list.
func Of[U any](p Parser[any, U]) Parser[any, any] {
	return ofParser[U]{inner: p}
}

type ofParser[U any] struct {
	inner Parser[any, U]
}

func (o ofParser[U]) Parse(v any, c Ctx) (any, error) {
	u, err := o.inner.Parse(v, c)
	if err != nil {
		return nil, err
	}
	return u, nil
}
