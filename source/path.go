package source

import (
	"fmt"

	"github.com/tidwall/gjson"

	anyparse "github.com/parsekit/anyparse"
)

// JSONPath extracts the subdocument at a gjson path from b and returns it in
// the any representation (numbers become float64). Missing paths are an
// error; parsing an optional subtree should be expressed with the Optional
// combinator instead.
func JSONPath(b []byte, path string) (any, error) {
	res := gjson.GetBytes(b, path)
	if !res.Exists() {
		return nil, fmt.Errorf("source: path %q not found", path)
	}
	return res.Value(), nil
}

// ParseJSONPath extracts the subdocument at path and runs p on it.
func ParseJSONPath[U any](p anyparse.Parser[any, U], b []byte, path string) (U, error) {
	v, err := JSONPath(b, path)
	if err != nil {
		var zero U
		return zero, err
	}
	return anyparse.Run(p, v)
}
