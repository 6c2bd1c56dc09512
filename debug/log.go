package debug

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jsontree/go-jsontree/encode"
	"github.com/jsontree/go-jsontree/ir"
)

// Tree wraps a Handle so %s formats it as JSON text.
type Tree struct{ ir.Handle }

func (t Tree) String() string {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(t.Handle, buf); err != nil {
		return fmt.Sprintf("[raw handle] %v", t.Handle)
	}
	return buf.String()
}

// Logf writes a formatted trace line to stderr. Handle and plain-Go
// container arguments are rendered as JSON text before formatting.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case ir.Handle:
			buf := bytes.NewBuffer(nil)
			if err := encode.Encode(x, buf); err != nil {
				args[i] = fmt.Sprintf("[raw handle] %v", x)
				continue
			}
			args[i] = buf.String()
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
