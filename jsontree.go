// Package jsontree ties the ir, parse, and encode packages together
// behind a small document-level API: load a tree from JSON text, dump
// it back out, and run document operations (patch, query, diff, YAML
// bridging) on whole trees.
package jsontree

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/jsontree/go-jsontree/encode"
	"github.com/jsontree/go-jsontree/ir"
	"github.com/jsontree/go-jsontree/parse"
)

// Constructors re-exported from ir, so callers building documents by
// hand need only this package.
var (
	Object = ir.Object
	Array  = ir.Array
	String = ir.String
	Number = ir.Number
	Bool   = ir.Bool
	Null   = ir.Null
)

// Load reads all of r and parses it as a single JSON document. Any
// parse failure is returned; see parse.SyntaxError for the position
// carried with it.
func Load(r io.Reader, opts ...parse.Option) (ir.Handle, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return ir.Handle{}, fmt.Errorf("reading document: %w", err)
	}
	return parse.Parse(d, opts...)
}

func LoadBytes(d []byte, opts ...parse.Option) (ir.Handle, error) {
	return parse.Parse(d, opts...)
}

func LoadString(s string, opts ...parse.Option) (ir.Handle, error) {
	return parse.Parse([]byte(s), opts...)
}

// Dump writes h to w in the canonical text form: multi-line objects
// with sorted keys, single-line arrays.
func Dump(h ir.Handle, w io.Writer, opts ...encode.Option) error {
	return encode.Encode(h, w, opts...)
}

func DumpString(h ir.Handle, opts ...encode.Option) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(h, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// dumpWire renders h as single-line JSON for handing to byte-oriented
// libraries (json-patch, yaml, diff).
func dumpWire(h ir.Handle) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(h, buf, encode.Compact(true)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// loadWire re-imports JSON emitted by a byte-oriented library. Such
// output comes from encoding/json, which writes backslash-u escapes
// parse.Parse passes through literally, so it is decoded with
// encoding/json instead.
func loadWire(d []byte) (ir.Handle, error) {
	var v any
	if err := json.Unmarshal(d, &v); err != nil {
		return ir.Handle{}, fmt.Errorf("reading wire document: %w", err)
	}
	return ir.FromAny(v)
}
