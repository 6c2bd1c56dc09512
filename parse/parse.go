// Package parse provides JSON parsing support.
package parse

import (
	"strconv"

	"github.com/jsontree/go-jsontree/ir"
)

// Parse consumes the whole of d and returns the document tree. A
// malformed document returns a *SyntaxError carrying line, column, and
// the offending line; the caller always learns about failure, so a
// Null result means the input was the literal "null". The "null"
// literal is parseable; empty input and trailing content after the
// root value are syntax errors.
func Parse(d []byte, opts ...Option) (ir.Handle, error) {
	pOpts := &parseOpts{maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	r := &reader{d: d}
	res, err := r.value(pOpts, 0)
	if err != nil {
		return ir.Handle{}, err
	}
	r.skipSpaces()
	if !r.eof() {
		c, _ := r.peek()
		return ir.Handle{}, r.syntaxErrorf("unexpected %q after top-level value", c)
	}
	return res, nil
}

// reader is the parser cursor: an absolute offset plus the line and
// column it corresponds to. forward moves one byte; a newline resets
// the column and bumps the line.
type reader struct {
	d    []byte
	off  int
	line int
	col  int
}

func (r *reader) eof() bool {
	return r.off >= len(r.d)
}

func (r *reader) peek() (byte, bool) {
	if r.eof() {
		return 0, false
	}
	return r.d[r.off], true
}

func (r *reader) next() (byte, bool) {
	c, ok := r.peek()
	if !ok {
		return 0, false
	}
	r.forward(c)
	return c, true
}

func (r *reader) forward(c byte) {
	if c == '\n' {
		r.col = 0
		r.line++
	} else {
		r.col++
	}
	r.off++
}

func (r *reader) skipSpaces() {
	for !r.eof() {
		switch r.d[r.off] {
		case ' ', '\t', '\r', '\n':
			r.forward(r.d[r.off])
		default:
			return
		}
	}
}

func (r *reader) nextNonSpace() (byte, bool) {
	r.skipSpaces()
	return r.next()
}

func (r *reader) expect(want byte) error {
	c, ok := r.nextNonSpace()
	if !ok {
		return r.syntaxErrorf("expecting %q, got end of input", want)
	}
	if c != want {
		return r.syntaxErrorf("expecting %q, got %q", want, c)
	}
	return nil
}

func (r *reader) value(opts *parseOpts, depth int) (ir.Handle, error) {
	if depth > opts.maxDepth {
		return ir.Handle{}, r.syntaxErrorf("nesting deeper than %d", opts.maxDepth)
	}
	r.skipSpaces()
	c, ok := r.peek()
	if !ok {
		return ir.Handle{}, r.syntaxErrorf("unexpected end of input")
	}
	switch {
	case c == '{':
		return r.object(opts, depth)
	case c == '[':
		return r.array(opts, depth)
	case c == '"':
		s, err := r.string_()
		if err != nil {
			return ir.Handle{}, err
		}
		return ir.String(s), nil
	case c == '-' || c >= '0' && c <= '9':
		return r.number()
	case c == 't' || c == 'f':
		return r.boolean()
	case c == 'n':
		return r.null()
	default:
		return ir.Handle{}, r.syntaxErrorf("unknown construct starting with %q", c)
	}
}

// string_ reads a quoted string. Escapes \" \\ \/ \b \f \n \r \t are
// decoded; \u is not decoded to a code point, the backslash and the u
// pass through literally and the hex digits follow as ordinary
// characters. A raw CR, LF, or end of input before the closing quote
// is an error.
func (r *reader) string_() (string, error) {
	if err := r.expect('"'); err != nil {
		return "", err
	}
	var buf []byte
	for {
		c, ok := r.next()
		if !ok {
			return "", r.syntaxErrorf("expecting %q, got end of input", '"')
		}
		switch c {
		case '"':
			return string(buf), nil
		case '\r', '\n':
			return "", r.syntaxErrorf("unterminated string")
		case '\\':
			e, ok := r.next()
			if !ok {
				return "", r.syntaxErrorf("expecting escape character, got end of input")
			}
			switch e {
			case 'r':
				buf = append(buf, '\r')
			case 'n':
				buf = append(buf, '\n')
			case 't':
				buf = append(buf, '\t')
			case 'b':
				buf = append(buf, '\b')
			case 'f':
				buf = append(buf, '\f')
			case '\\':
				buf = append(buf, '\\')
			case '/':
				buf = append(buf, '/')
			case '"':
				buf = append(buf, '"')
			case 'u':
				// no code point decoding: literal passthrough
				buf = append(buf, '\\', 'u')
			default:
				return "", r.syntaxErrorf("invalid escape %q", string([]byte{'\\', e}))
			}
		default:
			buf = append(buf, c)
		}
	}
}

// number scans the maximal run of number bytes from the cursor.
// Literals carrying more precision than a float64 holds are accepted;
// strconv.ParseFloat rounds them to the nearest representable value.
func (r *reader) number() (ir.Handle, error) {
	start := r.off
	for !r.eof() {
		c := r.d[r.off]
		switch {
		case c >= '0' && c <= '9',
			c == '-', c == '+', c == '.', c == 'e', c == 'E':
			r.forward(c)
		default:
			goto done
		}
	}
done:
	lit := r.d[start:r.off]
	f, err := strconv.ParseFloat(string(lit), 64)
	if err != nil {
		return ir.Handle{}, r.syntaxErrorf("invalid number %q", lit)
	}
	return ir.Number(f), nil
}

func (r *reader) boolean() (ir.Handle, error) {
	c, _ := r.next()
	if c == 't' {
		if err := r.literal("rue"); err != nil {
			return ir.Handle{}, err
		}
		return ir.Bool(true), nil
	}
	if err := r.literal("alse"); err != nil {
		return ir.Handle{}, err
	}
	return ir.Bool(false), nil
}

func (r *reader) null() (ir.Handle, error) {
	r.next()
	if err := r.literal("ull"); err != nil {
		return ir.Handle{}, err
	}
	return ir.Null(), nil
}

func (r *reader) literal(rest string) error {
	for i := 0; i < len(rest); i++ {
		c, ok := r.next()
		if !ok {
			return r.syntaxErrorf("expecting %q, got end of input", rest[i])
		}
		if c != rest[i] {
			return r.syntaxErrorf("expecting %q, got %q", rest[i], c)
		}
	}
	return nil
}

func (r *reader) array(opts *parseOpts, depth int) (ir.Handle, error) {
	if err := r.expect('['); err != nil {
		return ir.Handle{}, err
	}
	res := ir.Array()
	r.skipSpaces()
	if c, ok := r.peek(); ok && c == ']' {
		r.forward(c)
		return res, nil
	}
	for {
		elt, err := r.value(opts, depth+1)
		if err != nil {
			return ir.Handle{}, err
		}
		if err := res.Append(elt); err != nil {
			return ir.Handle{}, err
		}
		c, ok := r.nextNonSpace()
		if !ok {
			return ir.Handle{}, r.syntaxErrorf("expecting %q or %q, got end of input", ',', ']')
		}
		if c == ']' {
			return res, nil
		}
		if c != ',' {
			return ir.Handle{}, r.syntaxErrorf("expecting %q or %q, got %q", ',', ']', c)
		}
	}
}

func (r *reader) object(opts *parseOpts, depth int) (ir.Handle, error) {
	if err := r.expect('{'); err != nil {
		return ir.Handle{}, err
	}
	res := ir.Object()
	r.skipSpaces()
	if c, ok := r.peek(); ok && c == '}' {
		r.forward(c)
		return res, nil
	}
	for {
		r.skipSpaces()
		if c, ok := r.peek(); !ok || c != '"' {
			return ir.Handle{}, r.syntaxErrorf("expecting %q to open object key", '"')
		}
		key, err := r.string_()
		if err != nil {
			return ir.Handle{}, err
		}
		if err := r.expect(':'); err != nil {
			return ir.Handle{}, err
		}
		val, err := r.value(opts, depth+1)
		if err != nil {
			return ir.Handle{}, err
		}
		// duplicate keys: later pair wins
		if err := res.SetKey(key, val); err != nil {
			return ir.Handle{}, err
		}
		c, ok := r.nextNonSpace()
		if !ok {
			return ir.Handle{}, r.syntaxErrorf("expecting %q or %q, got end of input", ',', '}')
		}
		if c == '}' {
			return res, nil
		}
		if c != ',' {
			return ir.Handle{}, r.syntaxErrorf("expecting %q or %q, got %q", ',', '}', c)
		}
	}
}
