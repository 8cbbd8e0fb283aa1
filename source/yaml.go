package source

import (
	"gopkg.in/yaml.v3"

	anyparse "github.com/parsekit/anyparse"
)

// YAMLBytes decodes b into the any representation, normalizing yaml.v3's
// interface-keyed maps to string-keyed ones so the structural parsers see the
// same shape JSON decoding produces.
func YAMLBytes(b []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(b, &v); err != nil {
		return nil, err
	}
	return normalizeYAML(v), nil
}

// ParseYAML decodes b and runs p on the result.
func ParseYAML[U any](p anyparse.Parser[any, U], b []byte) (U, error) {
	v, err := YAMLBytes(b)
	if err != nil {
		var zero U
		return zero, err
	}
	return anyparse.Run(p, v)
}

func normalizeYAML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = normalizeYAML(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			ks, ok := k.(string)
			if !ok {
				continue
			}
			out[ks] = normalizeYAML(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = normalizeYAML(val)
		}
		return out
	default:
		return v
	}
}
