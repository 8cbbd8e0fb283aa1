package anyparse

import "encoding/json"

// String returns the minimal string parser: it succeeds iff the input's
// runtime type is string and returns it unchanged.
func String() Parser[any, string] { return stringParser{} }

type stringParser struct{}

func (stringParser) Parse(v any, c Ctx) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", typeError(v, "a string", c)
	}
	return s, nil
}

// Bool returns the minimal boolean parser.
func Bool() Parser[any, bool] { return boolParser{} }

type boolParser struct{}

func (boolParser) Parse(v any, c Ctx) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, typeError(v, "a boolean", c)
	}
	return b, nil
}

// Number returns the numeric parser. It accepts the shapes JSON and YAML
// decoding produce for numbers (float64, float32, int, int64, json.Number;
// goccy/go-json's Number aliases encoding/json's) and yields float64.
// NaN and infinities are not special-cased.
func Number() Parser[any, float64] { return numberParser{} }

type numberParser struct{}

func (numberParser) Parse(v any, c Ctx) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case json.Number:
		if f, err := n.Float64(); err == nil {
			return f, nil
		}
	}
	return 0, typeError(v, "a number", c)
}

// Identity returns the parser that accepts any input and returns it unchanged.
func Identity() Parser[any, any] { return identityParser{} }

// Unknown is Identity under the name used at schema boundaries where the value
// is deliberately left uninspected.
func Unknown() Parser[any, any] { return identityParser{} }

type identityParser struct{}

func (identityParser) Parse(v any, c Ctx) (any, error) { return v, nil }

// Constant returns a parser that ignores its input and always yields x.
func Constant[T, U any](x U) Parser[T, U] { return constantParser[T, U]{value: x} }

type constantParser[T, U any] struct {
	value U
}

func (p constantParser[T, U]) Parse(T, Ctx) (U, error) { return p.value, nil }

// Record returns the parser for raw objects: it succeeds iff the input is a
// string-keyed map and returns it as-is, without inspecting the values.
func Record() Parser[any, map[string]any] { return recordParser{} }

type recordParser struct{}

func (recordParser) Parse(v any, c Ctx) (map[string]any, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, typeError(v, "an object", c)
	}
	return m, nil
}
