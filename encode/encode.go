package encode

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/jsontree/go-jsontree/ir"
)

// EncState carries the encoder configuration and the current nesting
// depth. Encoding never mutates the tree.
type EncState struct {
	depth, indent int
	sortKeys      bool
	compact       bool
	floatStyle    FloatStyle

	Color func(ir.Kind, ColorAttr, string) string
}

// Encode writes h to w. By default objects are multi-line with two
// space indentation and sorted keys, arrays stay on a single line, and
// numbers use the shortest round-trippable decimal. See the Options
// for the configuration surface; nothing is read from or written to
// process-wide state.
func Encode(h ir.Handle, w io.Writer, opts ...Option) error {
	es := &EncState{
		indent:   2,
		sortKeys: true,
	}
	for _, opt := range opts {
		opt(es)
	}
	return encode(h, w, es)
}

func encode(h ir.Handle, w io.Writer, es *EncState) error {
	switch h.Kind() {
	case ir.ObjectKind:
		return encodeObject(h, w, es)
	case ir.ArrayKind:
		return encodeArray(h, w, es)
	case ir.StringKind:
		return encodeString(h, w, es)
	case ir.NumberKind:
		return encodeNumber(h, w, es)
	case ir.BoolKind:
		return encodeBool(h, w, es)
	case ir.NullKind:
		return encodeNull(w, es)
	default:
		panic("kind")
	}
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func writeNL(w io.Writer, es *EncState) error {
	if es.compact {
		return nil
	}
	return writeString(w, "\n"+strings.Repeat(strings.Repeat(" ", es.indent), es.depth))
}

// Objects are the only multi-line construct: one "key": value entry
// per line, closing brace at the parent indent, and {} for the empty
// object. Entries are emitted in sorted key order unless SortKeys is
// disabled.
func encodeObject(h ir.Handle, w io.Writer, es *EncState) error {
	keys, vals := h.Entries(es.sortKeys)
	if err := writeString(w, applyColor(es, ir.ObjectKind, SepColor, "{")); err != nil {
		return err
	}
	if len(keys) == 0 {
		return writeString(w, applyColor(es, ir.ObjectKind, SepColor, "}"))
	}
	es.depth++
	for i, k := range keys {
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := writeField(w, k, es); err != nil {
			return err
		}
		if err := encode(vals[i], w, es); err != nil {
			return err
		}
		if i < len(keys)-1 {
			if err := writeString(w, applyColor(es, ir.ObjectKind, SepColor, ",")); err != nil {
				return err
			}
			if es.compact {
				if err := writeString(w, " "); err != nil {
					return err
				}
			}
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeString(w, applyColor(es, ir.ObjectKind, SepColor, "}"))
}

// Arrays always render on a single line, even when their elements are
// multi-line objects.
func encodeArray(h ir.Handle, w io.Writer, es *EncState) error {
	if err := writeString(w, applyColor(es, ir.ArrayKind, SepColor, "[")); err != nil {
		return err
	}
	elems := h.Elems()
	for i, e := range elems {
		if err := encode(e, w, es); err != nil {
			return err
		}
		if i < len(elems)-1 {
			if err := writeString(w, applyColor(es, ir.ArrayKind, SepColor, ", ")); err != nil {
				return err
			}
		}
	}
	return writeString(w, applyColor(es, ir.ArrayKind, SepColor, "]"))
}

func encodeString(h ir.Handle, w io.Writer, es *EncState) error {
	s, err := h.AsString()
	if err != nil {
		return err
	}
	return writeString(w, applyColor(es, ir.StringKind, ValueColor, Quote(s)))
}

func encodeNumber(h ir.Handle, w io.Writer, es *EncState) error {
	f, err := h.AsNumber()
	if err != nil {
		return err
	}
	v, err := formatFloat(f, es.floatStyle)
	if err != nil {
		return err
	}
	return writeString(w, applyColor(es, ir.NumberKind, ValueColor, v))
}

func formatFloat(f float64, style FloatStyle) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", fmt.Errorf("%w: %f has no JSON representation", ErrEncoding, f)
	}
	switch style {
	case FloatShortest:
		return strconv.FormatFloat(f, 'g', -1, 64), nil
	case FloatDecimal:
		return strconv.FormatFloat(f, 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("%w: unknown float style %d", ErrEncoding, style)
	}
}

func encodeBool(h ir.Handle, w io.Writer, es *EncState) error {
	b, err := h.AsBool()
	if err != nil {
		return err
	}
	return writeString(w, applyColor(es, ir.BoolKind, ValueColor, strconv.FormatBool(b)))
}

func encodeNull(w io.Writer, es *EncState) error {
	return writeString(w, applyColor(es, ir.NullKind, ValueColor, "null"))
}

func writeField(w io.Writer, f string, es *EncState) error {
	field := applyColor(es, ir.ObjectKind, FieldColor, Quote(f))
	sep := applyColor(es, ir.ObjectKind, SepColor, ":")
	return writeString(w, field+sep+" ")
}

func applyColor(es *EncState, k ir.Kind, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(k, attr, v)
}
