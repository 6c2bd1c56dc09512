package jsontree

import (
	"testing"
)

func TestApplyPatch(t *testing.T) {
	for _, tc := range []struct {
		name  string
		doc   string
		patch string
		want  string
	}{
		{
			name:  "replace",
			doc:   `{"a": 1, "b": 2}`,
			patch: `[{"op": "replace", "path": "/a", "value": 9}]`,
			want:  `{"a": 9, "b": 2}`,
		},
		{
			name:  "add-remove",
			doc:   `{"a": 1}`,
			patch: `[{"op": "add", "path": "/c", "value": [1, 2]}, {"op": "remove", "path": "/a"}]`,
			want:  `{"c": [1, 2]}`,
		},
		{
			name:  "array-insert",
			doc:   `{"xs": [1, 3]}`,
			patch: `[{"op": "add", "path": "/xs/1", "value": 2}]`,
			want:  `{"xs": [1, 2, 3]}`,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ApplyPatch(mustLoad(t, tc.doc), mustLoad(t, tc.patch))
			if err != nil {
				t.Fatal(err)
			}
			if !got.Equal(mustLoad(t, tc.want)) {
				s, _ := DumpString(got)
				t.Errorf("got %s", s)
			}
		})
	}
}

func TestApplyPatchDocUnchanged(t *testing.T) {
	doc := mustLoad(t, `{"a": 1}`)
	_, err := ApplyPatch(doc, mustLoad(t, `[{"op": "replace", "path": "/a", "value": 2}]`))
	if err != nil {
		t.Fatal(err)
	}
	if !doc.Equal(mustLoad(t, `{"a": 1}`)) {
		t.Error("input document mutated")
	}
}

func TestApplyPatchErrors(t *testing.T) {
	doc := mustLoad(t, `{"a": 1}`)
	if _, err := ApplyPatch(doc, mustLoad(t, `{"not": "an array"}`)); err == nil {
		t.Error("bad patch shape accepted")
	}
	if _, err := ApplyPatch(doc, mustLoad(t, `[{"op": "test", "path": "/a", "value": 2}]`)); err == nil {
		t.Error("failed test op accepted")
	}
}

// json-patch hands back encoding/json output, with <, &, control
// characters and the like written as backslash-u escapes; strings the
// patch never touched must survive byte for byte.
func TestApplyPatchKeepsUntouchedStrings(t *testing.T) {
	doc := Object()
	if err := doc.SetKey("s", String("a<b&c")); err != nil {
		t.Fatal(err)
	}
	got, err := ApplyPatch(doc, mustLoad(t, `[{"op": "add", "path": "/x", "value": 1}]`))
	if err != nil {
		t.Fatal(err)
	}
	v, err := got.Key("s")
	if err != nil {
		t.Fatal(err)
	}
	s, err := v.AsString()
	if err != nil {
		t.Fatal(err)
	}
	if s != "a<b&c" {
		t.Errorf("got %q", s)
	}
}

func TestMergePatchKeepsUntouchedStrings(t *testing.T) {
	doc := Object()
	for k, v := range map[string]string{"s": "a<b", "c": "\x01"} {
		if err := doc.SetKey(k, String(v)); err != nil {
			t.Fatal(err)
		}
	}
	got, err := MergePatch(doc, mustLoad(t, `{"x": 1}`))
	if err != nil {
		t.Fatal(err)
	}
	for _, tc := range []struct {
		key  string
		want string
	}{
		{"s", "a<b"},
		{"c", "\x01"},
	} {
		v, err := got.Key(tc.key)
		if err != nil {
			t.Fatal(err)
		}
		s, err := v.AsString()
		if err != nil {
			t.Fatal(err)
		}
		if s != tc.want {
			t.Errorf("%s: got %q want %q", tc.key, s, tc.want)
		}
	}
}

func TestMergePatch(t *testing.T) {
	doc := mustLoad(t, `{"a": 1, "b": {"c": 2, "d": 3}}`)
	patch := mustLoad(t, `{"a": null, "b": {"c": 9}}`)
	got, err := MergePatch(doc, patch)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(mustLoad(t, `{"b": {"c": 9, "d": 3}}`)) {
		s, _ := DumpString(got)
		t.Errorf("got %s", s)
	}
}
