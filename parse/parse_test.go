package parse

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/jsontree/go-jsontree/ir"
)

func TestParseOK(t *testing.T) {
	tests := []struct {
		in   string
		want ir.Handle
	}{
		{in: `null`, want: ir.Null()},
		{in: `true`, want: ir.Bool(true)},
		{in: `false`, want: ir.Bool(false)},
		{in: `22`, want: ir.Number(22)},
		{in: `-1.5`, want: ir.Number(-1.5)},
		{in: `1e14`, want: ir.Number(1e14)},
		{in: `3.0`, want: ir.Number(3)},
		{in: `"hello"`, want: ir.String("hello")},
		{in: `""`, want: ir.String("")},
		{in: `[]`, want: ir.Array()},
		{in: `{}`, want: ir.Object()},
		{in: ` { } `, want: ir.Object()},
		{in: `[1, 2]`, want: ir.FromSlice([]ir.Handle{ir.Number(1), ir.Number(2)})},
		{in: `[[]]`, want: ir.FromSlice([]ir.Handle{ir.Array()})},
		{in: `[1, [2, [3]]]`, want: ir.FromSlice([]ir.Handle{
			ir.Number(1),
			ir.FromSlice([]ir.Handle{
				ir.Number(2),
				ir.FromSlice([]ir.Handle{ir.Number(3)}),
			}),
		})},
		{in: `{"a": 1}`, want: ir.FromMap(map[string]ir.Handle{"a": ir.Number(1)})},
		{in: "{\n  \"a\": {\"b\": null},\n  \"c\": [true]\n}", want: ir.FromMap(map[string]ir.Handle{
			"a": ir.FromMap(map[string]ir.Handle{"b": ir.Null()}),
			"c": ir.FromSlice([]ir.Handle{ir.Bool(true)}),
		})},
		{in: `{"dup": 1, "dup": 2}`, want: ir.FromMap(map[string]ir.Handle{"dup": ir.Number(2)})},
		{in: `"a\"b\\c\nd\te"`, want: ir.String("a\"b\\c\nd\te")},
		{in: `"\r\b\f\/"`, want: ir.String("\r\b\f/")},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse([]byte(tt.in))
			if err != nil {
				t.Fatal(err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("parsed tree differs from expected")
			}
		})
	}
}

func TestParseLongNumber(t *testing.T) {
	// literals with more digits than a float64 holds round, they do
	// not error
	got, err := Parse([]byte("3.14159265358979323846264338327950288419716939937510"))
	if err != nil {
		t.Fatal(err)
	}
	f, err := got.AsNumber()
	if err != nil {
		t.Fatal(err)
	}
	if f != math.Pi {
		t.Errorf("got %v", f)
	}
}

func TestParseUnicodeEscapePassthrough(t *testing.T) {
	// input text is "\u0041" including the quotes
	got, err := Parse([]byte("\"\\u0041\""))
	if err != nil {
		t.Fatal(err)
	}
	s, err := got.AsString()
	if err != nil {
		t.Fatal(err)
	}
	if s != "\\u0041" {
		t.Errorf("got %q, want literal passthrough %q", s, "\\u0041")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"spaces only", "   \n  "},
		{"missing value", `{"a": }`},
		{"missing colon", `{"a" 1}`},
		{"unquoted key", `{a: 1}`},
		{"missing comma array", `[1 2]`},
		{"missing comma object", `{"a": 1 "b": 2}`},
		{"unterminated array", `[1, 2`},
		{"unterminated object", `{"a": 1`},
		{"unterminated string", `"abc`},
		{"newline in string", "\"ab\ncd\""},
		{"bad escape", `"\x"`},
		{"unknown construct", `qqq`},
		{"bad true", `trve`},
		{"bad false", `fals`},
		{"bad null", `nul`},
		{"bad number", `1.2.3`},
		{"trailing content", `{} x`},
		{"two values", `1 2`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.in))
			if err == nil {
				t.Fatalf("expected error for %q", tt.in)
			}
			if !errors.Is(err, ErrSyntax) {
				t.Errorf("error does not wrap ErrSyntax: %v", err)
			}
			var se *SyntaxError
			if !errors.As(err, &se) {
				t.Errorf("error is not a *SyntaxError: %v", err)
			}
		})
	}
}

func TestSyntaxErrorPosition(t *testing.T) {
	in := "{\n  \"a\": ,\n  \"b\": 2\n}"
	_, err := Parse([]byte(in))
	var se *SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("expected *SyntaxError, got %v", err)
	}
	if se.Line != 1 {
		t.Errorf("line = %d, want 1", se.Line)
	}
	if se.Src != `  "a": ,` {
		t.Errorf("src = %q", se.Src)
	}
	msg := se.Error()
	if !strings.Contains(msg, "^") {
		t.Errorf("error message has no caret:\n%s", msg)
	}
	caretLine := msg[strings.LastIndex(msg, "\n")+1:]
	if len(caretLine)-1 != se.Col {
		t.Errorf("caret at column %d, want %d", len(caretLine)-1, se.Col)
	}
}

func TestMaxDepth(t *testing.T) {
	in := strings.Repeat("[", 50) + strings.Repeat("]", 50)
	if _, err := Parse([]byte(in)); err != nil {
		t.Fatalf("depth 50 within default bound: %v", err)
	}
	_, err := Parse([]byte(in), MaxDepth(10))
	if !errors.Is(err, ErrSyntax) {
		t.Errorf("expected ErrSyntax past MaxDepth, got %v", err)
	}
}

func TestNumberCursorAdvance(t *testing.T) {
	got, err := Parse([]byte(`[1.25e2, 3]`))
	if err != nil {
		t.Fatal(err)
	}
	want := ir.FromSlice([]ir.Handle{ir.Number(125), ir.Number(3)})
	if !got.Equal(want) {
		t.Error("number parse consumed the wrong span")
	}
}
