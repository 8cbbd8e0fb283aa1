package anyparse

import "sort"

// Object builds a parser for structured records from a map of field name to
// field parser (erase typed parsers with Of, or use Optional/Nullable which
// are already any-typed).
//
// The input must be a string-keyed map. Fields are visited in sorted name
// order for deterministic behavior; each visit pushes the context fragment
// "object property <name>". A missing key is parsed as the Absent sentinel so
// per-field parsers decide how to treat it: a field whose parser returns
// Absent is omitted from the output map entirely.
func Object(fields map[string]Parser[any, any]) Parser[any, map[string]any] {
	fs := make(map[string]Parser[any, any], len(fields))
	keys := make([]string, 0, len(fields))
	for k, p := range fields {
		fs[k] = p
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return objectParser{fields: fs, keys: keys}
}

type objectParser struct {
	fields map[string]Parser[any, any]
	keys   []string
}

func (o objectParser) Parse(v any, c Ctx) (map[string]any, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, typeError(v, "an object", c)
	}
	out := make(map[string]any, len(o.keys))
	for _, k := range o.keys {
		in := Absent
		if fv, exists := m[k]; exists {
			in = fv
		}
		r, err := o.fields[k].Parse(in, c.Push("object property "+k))
		if err != nil {
			return nil, err
		}
		if !IsAbsent(r) {
			out[k] = r
		}
	}
	return out, nil
}
