// Package libdiff computes structural diffs between document trees.
//
// A diff is itself a tree. Leaf changes become an Object with the
// reserved keys "-" (the old value) and "+" (the new value); object
// diffs map only the changed fields to their entries, and array diffs
// align element sequences, with null marking unchanged positions.
//
//	entry, changed := libdiff.Diff(oldDoc, newDoc)
//
// Because "-" and "+" are reserved, diffs of documents that use those
// field names themselves are ambiguous to a reader, though still
// well-formed.
package libdiff
