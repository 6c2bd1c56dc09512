package encode

// FloatStyle selects the numeric formatting contract. There is no
// locale-sensitive conversion in either style.
type FloatStyle int

const (
	// FloatShortest emits the shortest decimal that round-trips the
	// float64, using exponent form when shorter.
	FloatShortest FloatStyle = iota
	// FloatDecimal emits plain decimal point form without exponents.
	FloatDecimal
)

type Option func(*EncState)

// Indent sets the per-level indent width for objects (default 2).
func Indent(n int) Option {
	return func(es *EncState) { es.indent = n }
}

// SortKeys controls object entry order: sorted key order when true
// (the default), insertion order when false.
func SortKeys(v bool) Option {
	return func(es *EncState) { es.sortKeys = v }
}

// Compact puts the whole document on a single line.
func Compact(v bool) Option {
	return func(es *EncState) { es.compact = v }
}

func FloatFormat(style FloatStyle) Option {
	return func(es *EncState) { es.floatStyle = style }
}

// Depth sets the starting nesting depth, for embedding output inside
// already indented text.
func Depth(n int) Option {
	return func(es *EncState) { es.depth = n }
}

func EncodeColors(c *Colors) Option {
	return func(es *EncState) { es.Color = c.Color }
}
