package anyparse

import "strconv"

// Array builds a parser applying item to every element of an []any input, in
// order, pushing the context fragment "array at index <i>" for element i.
// The first failing element aborts the whole parse; no partial result is
// returned.
func Array[U any](item Parser[any, U]) Parser[any, []U] {
	return arrayParser[U]{item: item}
}

type arrayParser[U any] struct {
	item Parser[any, U]
}

func (a arrayParser[U]) Parse(v any, c Ctx) ([]U, error) {
	xs, ok := v.([]any)
	if !ok {
		return nil, typeError(v, "an array", c)
	}
	out := make([]U, len(xs))
	for i, x := range xs {
		u, err := a.item.Parse(x, c.Push("array at index "+strconv.Itoa(i)))
		if err != nil {
			return nil, err
		}
		out[i] = u
	}
	return out, nil
}
