package ir

import "errors"

var (
	// ErrType reports indexing or assignment against an incompatible
	// kind.
	ErrType = errors.New("type error")
	// ErrIndex reports an out of range integer index on an Array.
	ErrIndex = errors.New("index out of range")
	// ErrCast reports a checked downcast to the wrong kind.
	ErrCast = errors.New("invalid cast")
)
