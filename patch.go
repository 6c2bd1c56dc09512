package jsontree

import (
	"fmt"

	"github.com/jsontree/go-jsontree/debug"
	"github.com/jsontree/go-jsontree/ir"

	jsonpatch "github.com/evanphx/json-patch"
)

// ApplyPatch applies an RFC 6902 patch document to doc and returns the
// patched tree. doc is not modified; patch must be an Array of
// operation Objects.
func ApplyPatch(doc, patch ir.Handle) (ir.Handle, error) {
	if debug.Patch() {
		debug.Logf("apply patch %s\n to doc %s\n", debug.Tree{Handle: patch}, debug.Tree{Handle: doc})
	}
	pd, err := dumpWire(patch)
	if err != nil {
		return ir.Handle{}, err
	}
	ops, err := jsonpatch.DecodePatch(pd)
	if err != nil {
		return ir.Handle{}, fmt.Errorf("decoding patch: %w", err)
	}
	dd, err := dumpWire(doc)
	if err != nil {
		return ir.Handle{}, err
	}
	out, err := ops.Apply(dd)
	if err != nil {
		return ir.Handle{}, fmt.Errorf("applying patch: %w", err)
	}
	return loadWire(out)
}

// MergePatch applies an RFC 7386 merge patch to doc: object entries in
// patch overwrite or, when null, delete the matching entries in doc.
func MergePatch(doc, patch ir.Handle) (ir.Handle, error) {
	if debug.Patch() {
		debug.Logf("merge patch %s\n into doc %s\n", debug.Tree{Handle: patch}, debug.Tree{Handle: doc})
	}
	dd, err := dumpWire(doc)
	if err != nil {
		return ir.Handle{}, err
	}
	pd, err := dumpWire(patch)
	if err != nil {
		return ir.Handle{}, err
	}
	out, err := jsonpatch.MergePatch(dd, pd)
	if err != nil {
		return ir.Handle{}, fmt.Errorf("merging patch: %w", err)
	}
	return loadWire(out)
}
