package libdiff

import (
	"github.com/jsontree/go-jsontree/encode"
	"github.com/jsontree/go-jsontree/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffFunc recurses on aligned values. The bool result is false when
// the two values do not differ.
type DiffFunc func(from, to ir.Handle) (ir.Handle, bool)

// Diff compares two trees structurally. Kind mismatches and unequal
// leaves produce a change entry; objects and arrays recurse.
func Diff(from, to ir.Handle) (ir.Handle, bool) {
	if from.Kind() != to.Kind() {
		return MakeDiff(from, to), true
	}
	switch from.Kind() {
	case ir.ObjectKind:
		return DiffObject(from, to, Diff)
	case ir.ArrayKind:
		return DiffArray(from, to, Diff)
	default:
		if from.Equal(to) {
			return ir.Handle{}, false
		}
		return MakeDiff(from, to), true
	}
}

// MakeDiff builds a change entry. A zero from means an insertion, a
// zero to a deletion; both bound means a replacement. Values are
// cloned so the entry shares nothing with its inputs.
func MakeDiff(from, to ir.Handle) ir.Handle {
	res := ir.Object()
	if !from.IsZero() {
		res.SetKey("-", from.Clone())
	}
	if !to.IsZero() {
		res.SetKey("+", to.Clone())
	}
	return res
}

// DiffObject diffs the field sequences of two objects. Field names are
// mapped to runes so the sequence alignment can run over them; changed
// fields map to their entries in the result, unchanged ones are
// omitted. Alignment runs over sorted entries, so insertion order
// never shows up as a change.
func DiffObject(from, to ir.Handle, df DiffFunc) (ir.Handle, bool) {
	fieldMap := map[string]rune{}
	runeMap := map[rune]string{}
	fromKeys, fromVals := from.Entries(true)
	toKeys, toVals := to.Entries(true)
	fromRunes := mapKeysTo(fieldMap, runeMap, fromKeys)
	toRunes := mapKeysTo(fieldMap, runeMap, toKeys)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	resMap := map[string]ir.Handle{}
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffDelete:
			for _, r := range diff.Text {
				resMap[runeMap[r]] = MakeDiff(fromVals[fi], ir.Handle{})
				fi++
			}
		case diffpatch.DiffEqual:
			for _, r := range diff.Text {
				fRes, changed := df(fromVals[fi], toVals[ti])
				if changed {
					resMap[runeMap[r]] = fRes
				}
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for _, r := range diff.Text {
				resMap[runeMap[r]] = MakeDiff(ir.Handle{}, toVals[ti])
				ti++
			}
		}
	}
	if len(resMap) == 0 {
		return ir.Handle{}, false
	}
	return ir.FromMap(resMap), true
}

// DiffArray aligns two element sequences by their canonical encodings
// and returns one entry per aligned position: a change entry where the
// sequences differ, null where they agree.
func DiffArray(from, to ir.Handle, df DiffFunc) (ir.Handle, bool) {
	elemMap := map[string]rune{}
	runeMap := map[rune]string{}
	fromRunes := mapElemsTo(elemMap, runeMap, from.Elems())
	toRunes := mapElemsTo(elemMap, runeMap, to.Elems())
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	res := ir.Array()
	changed := false
	fromVals, toVals := from.Elems(), to.Elems()
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffDelete:
			for range diff.Text {
				res.Append(MakeDiff(fromVals[fi], ir.Handle{}))
				changed = true
				fi++
			}
		case diffpatch.DiffEqual:
			for range diff.Text {
				res.Append(ir.Null())
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for range diff.Text {
				res.Append(MakeDiff(ir.Handle{}, toVals[ti]))
				changed = true
				ti++
			}
		}
	}
	if !changed {
		return ir.Handle{}, false
	}
	return res, true
}

func mapKeysTo(m map[string]rune, im map[rune]string, keys []string) []rune {
	rs := make([]rune, len(keys))
	for i, k := range keys {
		r, ok := m[k]
		if !ok {
			r = rune(len(m))
			m[k] = r
			im[r] = k
		}
		rs[i] = r
	}
	return rs
}

func mapElemsTo(m map[string]rune, im map[rune]string, elems []ir.Handle) []rune {
	rs := make([]rune, len(elems))
	for i, e := range elems {
		k := encode.MustString(e, encode.Compact(true))
		r, ok := m[k]
		if !ok {
			r = rune(len(m))
			m[k] = r
			im[r] = k
		}
		rs[i] = r
	}
	return rs
}
