package libdiff

import (
	"testing"

	"github.com/jsontree/go-jsontree/ir"
	"github.com/jsontree/go-jsontree/parse"
)

func mustParse(t *testing.T, s string) ir.Handle {
	t.Helper()
	h, err := parse.Parse([]byte(s))
	if err != nil {
		t.Fatal(err)
	}
	return h
}

func TestDiffEqualTrees(t *testing.T) {
	a := mustParse(t, `{"a": 1, "b": [1, 2]}`)
	b := mustParse(t, `{"b": [1, 2], "a": 1}`)
	if d, changed := Diff(a, b); changed {
		t.Errorf("got %v", d)
	}
}

func TestDiffReorderedFields(t *testing.T) {
	from := ir.Object()
	from.SetKey("b", ir.Number(2))
	from.SetKey("a", ir.Number(1))
	to := ir.Object()
	to.SetKey("a", ir.Number(3))
	to.SetKey("b", ir.Number(2))
	d, changed := Diff(from, to)
	if !changed {
		t.Fatal("no change reported")
	}
	if !d.Equal(mustParse(t, `{"a": {"-": 1, "+": 3}}`)) {
		t.Errorf("got %v", d)
	}
}

func TestDiffLeafChange(t *testing.T) {
	d, changed := Diff(mustParse(t, `{"a": 1, "b": 2}`), mustParse(t, `{"a": 1, "b": 3}`))
	if !changed {
		t.Fatal("no change reported")
	}
	if !d.Equal(mustParse(t, `{"b": {"-": 2, "+": 3}}`)) {
		t.Errorf("got %v", d)
	}
}

func TestDiffFieldInsertDelete(t *testing.T) {
	d, changed := Diff(mustParse(t, `{"a": 1, "b": 2}`), mustParse(t, `{"b": 2, "c": 3}`))
	if !changed {
		t.Fatal("no change reported")
	}
	if !d.Equal(mustParse(t, `{"a": {"-": 1}, "c": {"+": 3}}`)) {
		t.Errorf("got %v", d)
	}
}

func TestDiffKindChange(t *testing.T) {
	d, changed := Diff(mustParse(t, `{"a": [1]}`), mustParse(t, `{"a": {"x": 1}}`))
	if !changed {
		t.Fatal("no change reported")
	}
	if !d.Equal(mustParse(t, `{"a": {"-": [1], "+": {"x": 1}}}`)) {
		t.Errorf("got %v", d)
	}
}

func TestDiffArray(t *testing.T) {
	d, changed := Diff(mustParse(t, `[1, 2, 3]`), mustParse(t, `[1, 4, 3]`))
	if !changed {
		t.Fatal("no change reported")
	}
	want := mustParse(t, `[null, {"-": 2}, {"+": 4}, null]`)
	if !d.Equal(want) {
		t.Errorf("got %v want %v", d, want)
	}
}

func TestDiffNested(t *testing.T) {
	d, changed := Diff(
		mustParse(t, `{"outer": {"inner": {"x": 1}}}`),
		mustParse(t, `{"outer": {"inner": {"x": 2}}}`),
	)
	if !changed {
		t.Fatal("no change reported")
	}
	if !d.Equal(mustParse(t, `{"outer": {"inner": {"x": {"-": 1, "+": 2}}}}`)) {
		t.Errorf("got %v", d)
	}
}

func TestDiffArrayByKey(t *testing.T) {
	from := mustParse(t, `[{"id": "a", "v": 1}, {"id": "b", "v": 2}]`)
	to := mustParse(t, `[{"id": "b", "v": 2}, {"id": "a", "v": 9}]`)
	d, err := DiffArrayByKey(from, to, "id", Diff)
	if err != nil {
		t.Fatal(err)
	}
	want := mustParse(t, `[{"id": "a", "v": {"-": 1, "+": 9}}]`)
	if !d.Equal(want) {
		t.Errorf("got %v want %v", d, want)
	}
}

func TestDiffArrayByKeyUnchanged(t *testing.T) {
	from := mustParse(t, `[{"id": "a"}, {"id": "b"}]`)
	to := mustParse(t, `[{"id": "b"}, {"id": "a"}]`)
	d, err := DiffArrayByKey(from, to, "id", Diff)
	if err != nil {
		t.Fatal(err)
	}
	if !d.IsZero() {
		t.Errorf("got %v", d)
	}
}

func TestDiffArrayByKeyEscapedKeyValue(t *testing.T) {
	// a key value whose encoding carries backslash-u escapes must come
	// back byte for byte
	id := "a\x01b"
	mk := func(v float64) ir.Handle {
		el := ir.Object()
		el.SetKey("id", ir.String(id))
		el.SetKey("v", ir.Number(v))
		return el
	}
	from := ir.FromSlice([]ir.Handle{mk(1)})
	to := ir.FromSlice([]ir.Handle{mk(2)})
	d, err := DiffArrayByKey(from, to, "id", Diff)
	if err != nil {
		t.Fatal(err)
	}
	elems := d.Elems()
	if len(elems) != 1 {
		t.Fatalf("got %v", d)
	}
	kv, err := elems[0].Key("id")
	if err != nil {
		t.Fatal(err)
	}
	s, err := kv.AsString()
	if err != nil {
		t.Fatal(err)
	}
	if s != id {
		t.Errorf("got %q want %q", s, id)
	}
}

func TestDiffArrayByKeyMissingKey(t *testing.T) {
	from := mustParse(t, `[{"id": "a"}]`)
	to := mustParse(t, `[{"v": 1}]`)
	if _, err := DiffArrayByKey(from, to, "id", Diff); err == nil {
		t.Error("missing key accepted")
	}
}
