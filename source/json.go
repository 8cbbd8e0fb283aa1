// Package source decodes raw JSON/YAML input into the materialized any form
// the anyparse parsers consume, and bundles decode+parse conveniences.
package source

import (
	"bytes"
	"io"

	json "github.com/goccy/go-json"

	anyparse "github.com/parsekit/anyparse"
)

// JSONBytes decodes b into the any representation (maps, slices, strings,
// json.Number, bool, nil). Numbers stay as json.Number so no precision is
// lost before a parser decides how to read them.
func JSONBytes(b []byte) (any, error) {
	return JSONReader(bytes.NewReader(b))
}

// JSONReader is JSONBytes over an io.Reader.
func JSONReader(r io.Reader) (any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// ParseJSON decodes b and runs p on the result.
func ParseJSON[U any](p anyparse.Parser[any, U], b []byte) (U, error) {
	v, err := JSONBytes(b)
	if err != nil {
		var zero U
		return zero, err
	}
	return anyparse.Run(p, v)
}
