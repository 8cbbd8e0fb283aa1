package anyparse

import "github.com/parsekit/anyparse/i18n"

// PreCondition checks the raw input before delegating to p. pred returns a
// failure message, or "" to accept; a non-empty message fails the parse with
// the current context applied.
func PreCondition[T, U any](p Parser[T, U], pred func(T) string) Parser[T, U] {
	return preConditionParser[T, U]{inner: p, pred: pred}
}

type preConditionParser[T, U any] struct {
	inner Parser[T, U]
	pred  func(T) string
}

func (pc preConditionParser[T, U]) Parse(v T, c Ctx) (U, error) {
	if msg := pc.pred(v); msg != "" {
		var zero U
		return zero, newError(CodeCondition, msg, c)
	}
	return pc.inner.Parse(v, c)
}

// PostCondition checks p's result. pred returns a failure message, or "" to
// accept the result unchanged.
func PostCondition[T, U any](p Parser[T, U], pred func(U) string) Parser[T, U] {
	return postConditionParser[T, U]{inner: p, pred: pred}
}

type postConditionParser[T, U any] struct {
	inner Parser[T, U]
	pred  func(U) string
}

func (pc postConditionParser[T, U]) Parse(v T, c Ctx) (U, error) {
	u, err := pc.inner.Parse(v, c)
	if err != nil {
		var zero U
		return zero, err
	}
	if msg := pc.pred(u); msg != "" {
		var zero U
		return zero, newError(CodeCondition, msg, c)
	}
	return u, nil
}

// Fail returns a parser that unconditionally fails with msg.
func Fail[T, U any](msg string) Parser[T, U] {
	return FailWith[T, U](func(T) string { return msg })
}

// FailWith is Fail with the message computed from the input value.
func FailWith[T, U any](fn func(T) string) Parser[T, U] {
	return failParser[T, U]{fn: fn}
}

type failParser[T, U any] struct {
	fn func(T) string
}

func (f failParser[T, U]) Parse(v T, c Ctx) (U, error) {
	var zero U
	return zero, newError(CodeFailed, f.fn(v), c)
}

// Alt tries each alternative in order against the same input and context and
// returns the first success. Intermediate failures are discarded; if every
// alternative fails the last error is surfaced. With zero alternatives Alt
// fails with the generic "Unexpected data" message. Order matters: earlier
// alternatives win on ambiguous input.
func Alt[T, U any](ps ...Parser[T, U]) Parser[T, U] {
	return altParser[T, U]{alternatives: ps}
}

type altParser[T, U any] struct {
	alternatives []Parser[T, U]
}

func (a altParser[T, U]) Parse(v T, c Ctx) (U, error) {
	var last error
	for _, p := range a.alternatives {
		u, err := p.Parse(v, c)
		if err == nil {
			return u, nil
		}
		last = err
	}
	var zero U
	if last == nil {
		return zero, newError(CodeNoAlternative, i18n.T(CodeNoAlternative, nil), c)
	}
	return zero, last
}
