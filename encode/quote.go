package encode

import (
	"encoding/hex"
	"unicode/utf8"
)

// Quote escapes v as a JSON string literal. Backslash, double quote,
// and the control shorthands \b \f \n \r \t get their two character
// forms; any other code point below 0x20 becomes \u00XX. U+2028 and
// U+2029 are also escaped so output can be embedded in JavaScript
// source. No other code points are escaped, and \uXXXX sequences are
// never produced for ordinary text.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	ucs := []byte{0, 0}
	cps := []byte{0, 0, 0, 0}
	for _, r := range v {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		case 0x2028:
			d = append(d, '\\', 'u', '2', '0', '2', '8')
		case 0x2029:
			d = append(d, '\\', 'u', '2', '0', '2', '9')
		default:
			if r < 0x20 {
				ucs[0] = byte(r >> 8)
				ucs[1] = byte(r)
				cps = hex.AppendEncode(cps[:0], ucs)
				d = append(d, '\\', 'u', cps[0], cps[1], cps[2], cps[3])
			} else {
				d = utf8.AppendRune(d, r)
			}
		}
	}
	d = append(d, '"')
	return string(d)
}
