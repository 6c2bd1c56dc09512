package libdiff

import (
	"fmt"

	"github.com/jsontree/go-jsontree/encode"
	"github.com/jsontree/go-jsontree/ir"
)

// DiffArrayByKey diffs two arrays of objects identified by the value
// under key, rather than by position. Each changed element appears in
// the result with its key value restored, so entries stay addressable
// no matter how the arrays were reordered.
func DiffArrayByKey(from, to ir.Handle, key string, df DiffFunc) (ir.Handle, error) {
	keyVals := map[string]ir.Handle{}
	fromMap, err := elemsByKey(from, key, keyVals)
	if err != nil {
		return ir.Handle{}, err
	}
	toMap, err := elemsByKey(to, key, keyVals)
	if err != nil {
		return ir.Handle{}, err
	}
	objDiff, changed := df(ir.FromMap(fromMap), ir.FromMap(toMap))
	if !changed {
		return ir.Handle{}, nil
	}
	keys, vals := objDiff.Entries(true)
	resItems := make([]ir.Handle, len(keys))
	for i, keyValStr := range keys {
		v := vals[i]
		var resMap map[string]ir.Handle
		switch v.Kind() {
		case ir.ObjectKind:
			ks, vs := v.Entries(false)
			resMap = make(map[string]ir.Handle, len(ks)+1)
			for j, k := range ks {
				resMap[k] = vs[j]
			}
		case ir.NullKind:
			resMap = map[string]ir.Handle{}
		default:
			return ir.Handle{}, fmt.Errorf("wrong kind for diff entry: %s", v.Kind())
		}
		resMap[key] = keyVals[keyValStr].Clone()
		resItems[i] = ir.FromMap(resMap)
	}
	return ir.FromSlice(resItems), nil
}

// elemsByKey indexes array elements by the canonical encoding of their
// value under key, recording the key value handle for each encoding so
// result elements carry the original value rather than a re-parse of
// its encoding.
func elemsByKey(arr ir.Handle, key string, keyVals map[string]ir.Handle) (map[string]ir.Handle, error) {
	elems := arr.Elems()
	res := make(map[string]ir.Handle, len(elems))
	for _, el := range elems {
		kv, err := lookupKey(el, key)
		if err != nil {
			return nil, err
		}
		enc := encode.MustString(kv, encode.Compact(true))
		res[enc] = el
		keyVals[enc] = kv
	}
	return res, nil
}

// lookupKey is a non-mutating Key: missing keys error instead of
// inserting a placeholder.
func lookupKey(el ir.Handle, key string) (ir.Handle, error) {
	ks, vs := el.Entries(false)
	if ks == nil {
		return ir.Handle{}, fmt.Errorf("%w: array element is %s, not Object", ir.ErrType, el.Kind())
	}
	for i, k := range ks {
		if k == key {
			return vs[i], nil
		}
	}
	return ir.Handle{}, fmt.Errorf("%w: element has no %q field", ir.ErrType, key)
}
