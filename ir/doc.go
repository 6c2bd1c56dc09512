// Package ir provides the in-memory representation of JSON documents.
//
// # Overview
//
// A document is a tree of Values, each holding one of six kinds: Null,
// Boolean, Number, String, Array, or Object. Callers never touch a
// Value directly; they hold Handles.
//
// # Handles
//
// A Handle refers to exactly one Value. Copying a Handle shares the
// Value (reference semantics): mutation through one copy is visible
// through every other copy. Rebinding a Go variable to a freshly
// constructed Handle detaches it from the old Value without mutating
// it. Clone is the explicit deep copy when sharing is not wanted.
//
// # Kinds and access
//
// A Value's kind never changes. Access is kind checked: string keys
// work only on Objects (with insert-on-lookup for missing keys),
// integer indices only on Arrays (bounds checked), and the AsString,
// AsNumber, and AsBool downcasts only on their matching kinds. A
// mismatch returns an error wrapping ErrType, ErrIndex, or ErrCast;
// there are no silent no-ops.
//
// # Objects
//
// Object keys are unique; writing an existing key overwrites its
// value. Iteration and serialization use sorted key order, which is a
// contract, not an accident. Numbers are always float64; there is no
// separate integer kind.
//
// # Thread safety
//
// Trees carry no locks. Concurrent mutation of a shared Value must be
// excluded by the caller.
//
// # Related packages
//
//   - github.com/jsontree/go-jsontree/parse - parses text into trees
//   - github.com/jsontree/go-jsontree/encode - encodes trees to text
package ir
