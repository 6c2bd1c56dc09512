package jsontree

import (
	"strings"

	"github.com/jsontree/go-jsontree/ir"
	"github.com/jsontree/go-jsontree/libdiff"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffTree returns the structural diff between a and b as a tree; see
// the libdiff package for the entry format. The bool result is false
// when the trees are equal.
func DiffTree(a, b ir.Handle) (ir.Handle, bool) {
	return libdiff.Diff(a, b)
}

// Diff returns the text diff between the canonical encodings of a and
// b, cleaned up to line granularity. Equal trees give an empty slice.
func Diff(a, b ir.Handle) ([]diffpatch.Diff, error) {
	if a.Equal(b) {
		return nil, nil
	}
	at, err := DumpString(a)
	if err != nil {
		return nil, err
	}
	bt, err := DumpString(b)
	if err != nil {
		return nil, err
	}
	diffCfg := diffpatch.New()
	ac, bc, lines := diffCfg.DiffLinesToChars(at+"\n", bt+"\n")
	diffs := diffCfg.DiffMain(ac, bc, false)
	return diffCfg.DiffCharsToLines(diffs, lines), nil
}

// DiffText renders Diff's result with +/- line prefixes.
func DiffText(a, b ir.Handle) (string, error) {
	diffs, err := Diff(a, b)
	if err != nil {
		return "", err
	}
	res := make([]byte, 0, 64)
	for _, d := range diffs {
		var mark byte
		switch d.Type {
		case diffpatch.DiffDelete:
			mark = '-'
		case diffpatch.DiffInsert:
			mark = '+'
		case diffpatch.DiffEqual:
			mark = ' '
		}
		for _, line := range strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n") {
			res = append(res, mark, ' ')
			res = append(res, line...)
			res = append(res, '\n')
		}
	}
	return string(res), nil
}
