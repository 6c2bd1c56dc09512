// Package parse turns JSON text into ir trees.
//
// Parse reads a complete in-memory buffer with a recursive descent
// reader; there is no streaming or incremental mode. The cursor tracks
// line and column so syntax errors can point at the failing character
// with the offending line and a caret.
//
// Unlike implementations that fold parse failures into a Null result,
// Parse reports failure through its error return: a nil error with a
// Null tree means the input really was the literal "null".
package parse
