package ir

import (
	"fmt"
	"maps"
	"slices"
)

// Value is one node of a JSON document tree. Its kind is set at
// construction and never changes; replacing a value of one kind with
// another means constructing a new Value and repointing the Handle.
//
// Objects hold keys and vals as parallel slices in insertion order.
// The observable iteration order is sorted key order (see Keys); the
// insertion order is retained only so the encoder can optionally
// preserve it.
type Value struct {
	kind Kind

	str  string
	num  float64
	b    bool
	keys []string
	vals []Handle
}

// Handle is the caller-facing reference to a Value. Copying a Handle
// aliases the underlying Value: mutations through one copy are visible
// through every other. Clone is the explicit deep copy. The zero Handle
// behaves as Null.
//
// Handles carry no synchronization. Concurrent mutation of a shared
// Value must be excluded by the caller.
type Handle struct {
	v *Value
}

func Null() Handle {
	return Handle{v: &Value{kind: NullKind}}
}

func Bool(v bool) Handle {
	return Handle{v: &Value{kind: BoolKind, b: v}}
}

func Number(v float64) Handle {
	return Handle{v: &Value{kind: NumberKind, num: v}}
}

func String(v string) Handle {
	return Handle{v: &Value{kind: StringKind, str: v}}
}

func Array() Handle {
	return Handle{v: &Value{kind: ArrayKind}}
}

func Object() Handle {
	return Handle{v: &Value{kind: ObjectKind}}
}

func FromSlice(hs []Handle) Handle {
	res := Array()
	res.v.vals = slices.Clone(hs)
	return res
}

func FromMap(m map[string]Handle) Handle {
	res := Object()
	res.v.keys = slices.Sorted(maps.Keys(m))
	res.v.vals = make([]Handle, len(res.v.keys))
	for i, k := range res.v.keys {
		res.v.vals[i] = m[k]
	}
	return res
}

func (h Handle) Kind() Kind {
	if h.v == nil {
		return NullKind
	}
	return h.v.kind
}

func (h Handle) IsNull() bool {
	return h.Kind() == NullKind
}

// IsZero reports whether h is the zero Handle, bound to no Value. A
// zero Handle still reads as Null.
func (h Handle) IsZero() bool {
	return h.v == nil
}

// Key returns the Handle stored under k. A missing key is inserted with
// a Null placeholder, matching map insertion-on-lookup. Calling Key on
// any kind but Object is a type error.
func (h Handle) Key(k string) (Handle, error) {
	if h.Kind() != ObjectKind {
		return Handle{}, fmt.Errorf("%w: %s cannot be indexed by string key", ErrType, h.Kind())
	}
	if i := slices.Index(h.v.keys, k); i >= 0 {
		return h.v.vals[i], nil
	}
	child := Null()
	h.v.keys = append(h.v.keys, k)
	h.v.vals = append(h.v.vals, child)
	return child, nil
}

// SetKey stores c under k, overwriting any existing entry.
func (h Handle) SetKey(k string, c Handle) error {
	if h.Kind() != ObjectKind {
		return fmt.Errorf("%w: %s cannot be indexed by string key", ErrType, h.Kind())
	}
	if i := slices.Index(h.v.keys, k); i >= 0 {
		h.v.vals[i] = c
		return nil
	}
	h.v.keys = append(h.v.keys, k)
	h.v.vals = append(h.v.vals, c)
	return nil
}

// Index returns the i-th element. Calling Index on any kind but Array
// is a type error; an out of range i is an index error.
func (h Handle) Index(i int) (Handle, error) {
	if h.Kind() != ArrayKind {
		return Handle{}, fmt.Errorf("%w: %s cannot be indexed by integer", ErrType, h.Kind())
	}
	if i < 0 || i >= len(h.v.vals) {
		return Handle{}, fmt.Errorf("%w: index %d with length %d", ErrIndex, i, len(h.v.vals))
	}
	return h.v.vals[i], nil
}

func (h Handle) SetIndex(i int, c Handle) error {
	if h.Kind() != ArrayKind {
		return fmt.Errorf("%w: %s cannot be indexed by integer", ErrType, h.Kind())
	}
	if i < 0 || i >= len(h.v.vals) {
		return fmt.Errorf("%w: index %d with length %d", ErrIndex, i, len(h.v.vals))
	}
	h.v.vals[i] = c
	return nil
}

func (h Handle) Append(c Handle) error {
	if h.Kind() != ArrayKind {
		return fmt.Errorf("%w: cannot append to %s", ErrType, h.Kind())
	}
	h.v.vals = append(h.v.vals, c)
	return nil
}

// Len returns the number of entries of an Object or elements of an
// Array.
func (h Handle) Len() (int, error) {
	switch h.Kind() {
	case ObjectKind, ArrayKind:
		return len(h.v.vals), nil
	default:
		return 0, fmt.Errorf("%w: %s has no length", ErrType, h.Kind())
	}
}

// Keys returns an Object's keys in sorted order, the order in which
// entries are iterated and serialized. It returns nil for other kinds.
func (h Handle) Keys() []string {
	if h.Kind() != ObjectKind {
		return nil
	}
	res := slices.Clone(h.v.keys)
	slices.Sort(res)
	return res
}

// Entries returns an Object's keys and values, sorted by key when
// sorted is true and in insertion order otherwise. It returns nils for
// other kinds.
func (h Handle) Entries(sorted bool) ([]string, []Handle) {
	if h.Kind() != ObjectKind {
		return nil, nil
	}
	if !sorted {
		return h.v.keys, h.v.vals
	}
	keys := slices.Clone(h.v.keys)
	slices.Sort(keys)
	vals := make([]Handle, len(keys))
	for i, k := range keys {
		j := slices.Index(h.v.keys, k)
		vals[i] = h.v.vals[j]
	}
	return keys, vals
}

// Elems returns an Array's elements. The slice aliases the array
// storage up to its current length.
func (h Handle) Elems() []Handle {
	if h.Kind() != ArrayKind {
		return nil
	}
	return h.v.vals
}

func (h Handle) AsString() (string, error) {
	if k := h.Kind(); k != StringKind {
		return "", fmt.Errorf("%w: from %s to String", ErrCast, k)
	}
	return h.v.str, nil
}

func (h Handle) AsNumber() (float64, error) {
	if k := h.Kind(); k != NumberKind {
		return 0, fmt.Errorf("%w: from %s to Number", ErrCast, k)
	}
	return h.v.num, nil
}

func (h Handle) AsBool() (bool, error) {
	if k := h.Kind(); k != BoolKind {
		return false, fmt.Errorf("%w: from %s to Boolean", ErrCast, k)
	}
	return h.v.b, nil
}

// CopyFrom assigns o's payload into h's Value. Both must have the same
// kind; CopyFrom never changes a value's kind. Container payloads are
// copied one level deep, so children remain shared with o. The new
// payload is visible through every alias of h.
func (h Handle) CopyFrom(o Handle) error {
	if h.v == nil {
		return fmt.Errorf("%w: cannot assign to zero handle", ErrType)
	}
	if h.Kind() != o.Kind() {
		return fmt.Errorf("%w: cannot assign %s to %s", ErrType, o.Kind(), h.Kind())
	}
	switch h.Kind() {
	case NullKind:
	case BoolKind:
		h.v.b = o.v.b
	case NumberKind:
		h.v.num = o.v.num
	case StringKind:
		h.v.str = o.v.str
	case ArrayKind:
		h.v.vals = slices.Clone(o.v.vals)
	case ObjectKind:
		h.v.keys = slices.Clone(o.v.keys)
		h.v.vals = slices.Clone(o.v.vals)
	}
	return nil
}

// Clone returns a deep copy sharing no Values with h.
func (h Handle) Clone() Handle {
	switch h.Kind() {
	case NullKind:
		return Null()
	case BoolKind:
		return Bool(h.v.b)
	case NumberKind:
		return Number(h.v.num)
	case StringKind:
		return String(h.v.str)
	case ArrayKind:
		res := Array()
		res.v.vals = make([]Handle, len(h.v.vals))
		for i, c := range h.v.vals {
			res.v.vals[i] = c.Clone()
		}
		return res
	case ObjectKind:
		res := Object()
		res.v.keys = slices.Clone(h.v.keys)
		res.v.vals = make([]Handle, len(h.v.vals))
		for i, c := range h.v.vals {
			res.v.vals[i] = c.Clone()
		}
		return res
	default:
		panic("kind")
	}
}

// Visit walks the tree rooted at h, calling f before and after each
// node's children.
func (h Handle) Visit(f func(h Handle, isPost bool) (bool, error)) error {
	dive, err := f(h, false)
	if err != nil {
		return err
	}
	if dive && !h.Kind().IsLeaf() {
		for _, c := range h.v.vals {
			if err := c.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(h, true); err != nil {
		return err
	}
	return nil
}
