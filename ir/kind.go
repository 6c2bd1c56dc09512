package ir

import "fmt"

// Kind identifies which of the six JSON variants a value holds. A value's
// Kind is fixed at construction and never changes in place.
type Kind int

const (
	NullKind Kind = iota
	BoolKind
	NumberKind
	StringKind
	ArrayKind
	ObjectKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		ObjectKind: "Object",
		ArrayKind:  "Array",
		StringKind: "String",
		NumberKind: "Number",
		BoolKind:   "Boolean",
		NullKind:   "Null",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Null":    NullKind,
		"Boolean": BoolKind,
		"Number":  NumberKind,
		"String":  StringKind,
		"Array":   ArrayKind,
		"Object":  ObjectKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		NullKind,
		BoolKind,
		NumberKind,
		StringKind,
		ArrayKind,
		ObjectKind,
	}
}

func (k Kind) IsLeaf() bool {
	switch k {
	case ObjectKind, ArrayKind:
		return false
	default:
		return true
	}
}
