package ir

import (
	"encoding/json"
	"fmt"
)

// ToAny converts a tree into plain Go values: nil, bool, float64,
// string, []any, and map[string]any. Object entries keep only their
// values; key order is not represented in a Go map.
func ToAny(h Handle) any {
	switch h.Kind() {
	case NullKind:
		return nil
	case BoolKind:
		return h.v.b
	case NumberKind:
		return h.v.num
	case StringKind:
		return h.v.str
	case ArrayKind:
		res := make([]any, len(h.v.vals))
		for i, c := range h.v.vals {
			res[i] = ToAny(c)
		}
		return res
	case ObjectKind:
		res := make(map[string]any, len(h.v.keys))
		for i, k := range h.v.keys {
			res[k] = ToAny(h.v.vals[i])
		}
		return res
	default:
		panic("kind")
	}
}

// FromAny builds a tree from plain Go values. Handles pass through as
// aliases. Numeric Go types all land in the single Number kind.
func FromAny(v any) (Handle, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case Handle:
		return x, nil
	case bool:
		return Bool(x), nil
	case string:
		return String(x), nil
	case float64:
		return Number(x), nil
	case float32:
		return Number(float64(x)), nil
	case int:
		return Number(float64(x)), nil
	case int32:
		return Number(float64(x)), nil
	case int64:
		return Number(float64(x)), nil
	case uint64:
		return Number(float64(x)), nil
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return Handle{}, fmt.Errorf("%w: %w", ErrType, err)
		}
		return Number(f), nil
	case []any:
		res := Array()
		for _, e := range x {
			c, err := FromAny(e)
			if err != nil {
				return Handle{}, err
			}
			res.v.vals = append(res.v.vals, c)
		}
		return res, nil
	case []Handle:
		return FromSlice(x), nil
	case map[string]any:
		res := make(map[string]Handle, len(x))
		for k, e := range x {
			c, err := FromAny(e)
			if err != nil {
				return Handle{}, err
			}
			res[k] = c
		}
		return FromMap(res), nil
	case map[string]Handle:
		return FromMap(x), nil
	default:
		return Handle{}, fmt.Errorf("%w: cannot build a value from %T", ErrType, v)
	}
}
