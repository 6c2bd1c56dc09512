package ir

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestObjectKeyInsertOnLookup(t *testing.T) {
	obj := Object()
	child, err := obj.Key("missing")
	if err != nil {
		t.Fatal(err)
	}
	if !child.IsNull() {
		t.Errorf("expected Null placeholder, got %s", child.Kind())
	}
	n, err := obj.Len()
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("expected 1 entry after lookup, got %d", n)
	}
}

func TestObjectLastWriteWins(t *testing.T) {
	obj := Object()
	if err := obj.SetKey("k", Number(1)); err != nil {
		t.Fatal(err)
	}
	if err := obj.SetKey("k", Number(2)); err != nil {
		t.Fatal(err)
	}
	n, _ := obj.Len()
	if n != 1 {
		t.Fatalf("duplicate key produced %d entries", n)
	}
	v, err := obj.Key("k")
	if err != nil {
		t.Fatal(err)
	}
	f, err := v.AsNumber()
	if err != nil {
		t.Fatal(err)
	}
	if f != 2 {
		t.Errorf("got %v, want 2", f)
	}
}

func TestHandleAliasing(t *testing.T) {
	obj := Object()
	alias := obj
	if err := alias.SetKey("a", String("x")); err != nil {
		t.Fatal(err)
	}
	v, err := obj.Key("a")
	if err != nil {
		t.Fatal(err)
	}
	s, err := v.AsString()
	if err != nil {
		t.Fatal(err)
	}
	if s != "x" {
		t.Errorf("mutation through alias not visible: got %q", s)
	}
}

func TestHandleDetachOnRebind(t *testing.T) {
	obj := Object()
	obj.SetKey("a", Number(1))
	h := obj
	h = Array()
	if h.Kind() != ArrayKind {
		t.Fatalf("rebound handle has kind %s", h.Kind())
	}
	if obj.Kind() != ObjectKind {
		t.Errorf("rebinding mutated the old referent to %s", obj.Kind())
	}
	if n, _ := obj.Len(); n != 1 {
		t.Errorf("old referent lost entries: %d", n)
	}
}

func TestCopyFromSameKind(t *testing.T) {
	a := String("old")
	alias := a
	if err := a.CopyFrom(String("new")); err != nil {
		t.Fatal(err)
	}
	s, _ := alias.AsString()
	if s != "new" {
		t.Errorf("CopyFrom not visible through alias: %q", s)
	}
}

func TestCopyFromKindMismatch(t *testing.T) {
	a := String("s")
	err := a.CopyFrom(Number(1))
	if !errors.Is(err, ErrType) {
		t.Errorf("expected ErrType, got %v", err)
	}
	if a.Kind() != StringKind {
		t.Errorf("failed CopyFrom changed kind to %s", a.Kind())
	}
}

func TestIndexKindErrors(t *testing.T) {
	tests := []struct {
		name string
		h    Handle
	}{
		{"Number", Number(3)},
		{"String", String("s")},
		{"Boolean", Bool(true)},
		{"Null", Null()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.h.Key("k"); !errors.Is(err, ErrType) {
				t.Errorf("string index: expected ErrType, got %v", err)
			}
			if _, err := tt.h.Index(0); !errors.Is(err, ErrType) {
				t.Errorf("integer index: expected ErrType, got %v", err)
			}
		})
	}
	if _, err := Array().Key("k"); !errors.Is(err, ErrType) {
		t.Errorf("array by string key: expected ErrType, got %v", err)
	}
	if _, err := Object().Index(0); !errors.Is(err, ErrType) {
		t.Errorf("object by integer: expected ErrType, got %v", err)
	}
}

func TestArrayBounds(t *testing.T) {
	arr := FromSlice([]Handle{Number(3), Number(1), Number(2)})
	for i, want := range []float64{3, 1, 2} {
		e, err := arr.Index(i)
		if err != nil {
			t.Fatal(err)
		}
		f, err := e.AsNumber()
		if err != nil {
			t.Fatal(err)
		}
		if f != want {
			t.Errorf("position %d: got %v, want %v", i, f, want)
		}
	}
	if _, err := arr.Index(3); !errors.Is(err, ErrIndex) {
		t.Errorf("expected ErrIndex, got %v", err)
	}
	if _, err := arr.Index(-1); !errors.Is(err, ErrIndex) {
		t.Errorf("expected ErrIndex for negative index, got %v", err)
	}
}

func TestCastErrors(t *testing.T) {
	n := Number(1)
	if _, err := n.AsString(); !errors.Is(err, ErrCast) {
		t.Errorf("expected ErrCast, got %v", err)
	}
	if _, err := n.AsBool(); !errors.Is(err, ErrCast) {
		t.Errorf("expected ErrCast, got %v", err)
	}
	if _, err := String("s").AsNumber(); !errors.Is(err, ErrCast) {
		t.Errorf("expected ErrCast, got %v", err)
	}
}

func TestKeysSorted(t *testing.T) {
	obj := Object()
	for _, k := range []string{"b", "a", "c"} {
		obj.SetKey(k, Null())
	}
	keys := obj.Keys()
	want := []string{"a", "b", "c"}
	if len(keys) != len(want) {
		t.Fatalf("got %d keys", len(keys))
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("keys[%d] = %q, want %q", i, keys[i], want[i])
		}
	}
}

func TestClone(t *testing.T) {
	obj := Object()
	inner := Array()
	inner.Append(Number(1))
	obj.SetKey("arr", inner)

	cp := obj.Clone()
	inner.Append(Number(2))

	got, err := cp.Key("arr")
	if err != nil {
		t.Fatal(err)
	}
	if n, _ := got.Len(); n != 1 {
		t.Errorf("clone shares storage with original: len=%d", n)
	}
	if !cp.Equal(FromMap(map[string]Handle{"arr": FromSlice([]Handle{Number(1)})})) {
		t.Error("clone not structurally equal to snapshot")
	}
}

func TestZeroHandle(t *testing.T) {
	var h Handle
	if h.Kind() != NullKind {
		t.Errorf("zero handle kind %s", h.Kind())
	}
	if !h.Equal(Null()) {
		t.Error("zero handle not equal to Null")
	}
}

func TestFromAnyRoundTrip(t *testing.T) {
	in := map[string]any{
		"s":   "str",
		"n":   1.5,
		"b":   true,
		"nil": nil,
		"arr": []any{1, "two"},
	}
	h, err := FromAny(in)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{
		"s":   "str",
		"n":   1.5,
		"b":   true,
		"nil": nil,
		"arr": []any{float64(1), "two"},
	}
	if d := cmp.Diff(want, ToAny(h)); d != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", d)
	}
}
