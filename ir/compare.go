package ir

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two trees. The result is 0 if
// a==b, -1 if a < b, and +1 if a > b. Kinds order as
// Null < Boolean < Number < String < Array < Object; values of the
// same kind compare structurally, with object entries taken in sorted
// key order.
func Compare(a, b Handle) int {
	rankA := rank(a.Kind())
	rankB := rank(b.Kind())
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Kind() {
	case NullKind:
		return 0
	case BoolKind:
		if a.v.b == b.v.b {
			return 0
		}
		if !a.v.b {
			return -1
		}
		return 1
	case NumberKind:
		return cmp.Compare(a.v.num, b.v.num)
	case StringKind:
		return strings.Compare(a.v.str, b.v.str)
	case ArrayKind:
		return compareArrays(a, b)
	case ObjectKind:
		return compareObjects(a, b)
	}
	return 0
}

// Equal reports same-kind structural equality. Values of different
// kinds are never equal.
func (h Handle) Equal(o Handle) bool {
	return Compare(h, o) == 0
}

func rank(k Kind) int {
	switch k {
	case NullKind:
		return 0
	case BoolKind:
		return 1
	case NumberKind:
		return 2
	case StringKind:
		return 3
	case ArrayKind:
		return 4
	case ObjectKind:
		return 5
	}
	return 100
}

func compareArrays(a, b Handle) int {
	lenA := len(a.v.vals)
	lenB := len(b.v.vals)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := Compare(a.v.vals[i], b.v.vals[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

func compareObjects(a, b Handle) int {
	keysA := a.Keys()
	keysB := b.Keys()
	minLen := min(len(keysA), len(keysB))

	for i := 0; i < minLen; i++ {
		if c := strings.Compare(keysA[i], keysB[i]); c != 0 {
			return c
		}
		va, _ := a.Key(keysA[i])
		vb, _ := b.Key(keysB[i])
		if c := Compare(va, vb); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(keysA), len(keysB))
}
