package jsontree

import (
	"fmt"

	"github.com/jsontree/go-jsontree/ir"

	"github.com/goccy/go-yaml"
)

// FromYAML parses d as YAML and converts it into a tree. YAML-only
// constructs that do not fit the six JSON kinds (non-string keys,
// anchors resolving to cycles) fail the conversion.
func FromYAML(d []byte) (ir.Handle, error) {
	var v any
	if err := yaml.Unmarshal(d, &v); err != nil {
		return ir.Handle{}, fmt.Errorf("parsing yaml: %w", err)
	}
	v = normalizeYAML(v)
	return ir.FromAny(v)
}

// ToYAML renders h as YAML text.
func ToYAML(h ir.Handle) ([]byte, error) {
	return yaml.Marshal(ir.ToAny(h))
}

// normalizeYAML rewrites the value shapes yaml.Unmarshal can produce
// into the ones ir.FromAny accepts.
func normalizeYAML(v any) any {
	switch x := v.(type) {
	case map[string]any:
		for k, e := range x {
			x[k] = normalizeYAML(e)
		}
		return x
	case map[any]any:
		m := make(map[string]any, len(x))
		for k, e := range x {
			m[fmt.Sprintf("%v", k)] = normalizeYAML(e)
		}
		return m
	case []any:
		for i, e := range x {
			x[i] = normalizeYAML(e)
		}
		return x
	case int8:
		return float64(x)
	case int16:
		return float64(x)
	case uint:
		return float64(x)
	case uint8:
		return float64(x)
	case uint16:
		return float64(x)
	case uint32:
		return float64(x)
	default:
		// int, int32, int64, uint64, float32, float64 go straight
		// through, ir.FromAny takes those as they are
		return x
	}
}
