package encode

import (
	"bytes"

	"github.com/jsontree/go-jsontree/ir"
)

func MustString(h ir.Handle, opts ...Option) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(h, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}
