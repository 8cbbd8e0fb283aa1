package anyparse

import (
	json "github.com/goccy/go-json"
)

// Bind projects the record produced by an object parser onto struct type T,
// resolving fields through go-json (honoring `json` tags). Parse failures of
// p are forwarded untouched; a record that does not fit T fails with the
// underlying marshalling error message and the current context.
func Bind[T any](p Parser[any, map[string]any]) Parser[any, T] {
	return bindParser[T]{inner: p}
}

type bindParser[T any] struct {
	inner Parser[any, map[string]any]
}

func (b bindParser[T]) Parse(v any, c Ctx) (T, error) {
	var zero T
	m, err := b.inner.Parse(v, c)
	if err != nil {
		return zero, err
	}
	raw, merr := json.Marshal(m)
	if merr != nil {
		return zero, newError(CodeFailed, merr.Error(), c)
	}
	var out T
	if uerr := json.Unmarshal(raw, &out); uerr != nil {
		return zero, newError(CodeFailed, uerr.Error(), c)
	}
	return out, nil
}
