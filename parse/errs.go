package parse

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSyntax is the sentinel wrapped by every *SyntaxError.
var ErrSyntax = errors.New("syntax error")

// SyntaxError reports malformed input. Line and Col are zero based;
// Src holds the text of the offending line.
type SyntaxError struct {
	Msg  string
	Line int
	Col  int
	Src  string
}

func (e *SyntaxError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "syntax error: %s at (%d, %d)\n", e.Msg, e.Line, e.Col)
	sb.WriteString(e.Src)
	sb.WriteByte('\n')
	sb.WriteString(strings.Repeat(" ", e.Col))
	sb.WriteByte('^')
	return sb.String()
}

func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}

func (r *reader) syntaxErrorf(format string, args ...any) error {
	return &SyntaxError{
		Msg:  fmt.Sprintf(format, args...),
		Line: r.line,
		Col:  r.col,
		Src:  r.lineText(),
	}
}

// lineText returns the text of the line the cursor is on, without its
// terminating newline.
func (r *reader) lineText() string {
	start := r.off - r.col
	if start < 0 {
		start = 0
	}
	end := start
	for end < len(r.d) && r.d[end] != '\n' {
		end++
	}
	if start > len(r.d) {
		start = len(r.d)
	}
	return string(r.d[start:end])
}
