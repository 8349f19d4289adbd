package vlseq

import "errors"

var (
	// ErrInvalidConfig signals an invalid sequence configuration.
	ErrInvalidConfig = errors.New("vlseq: invalid configuration")
	// ErrIndexOutOfBounds signals an invalid positional index.
	ErrIndexOutOfBounds = errors.New("vlseq: index out of bounds")
	// ErrInvalidRange signals an unordered or out-of-bounds element range.
	ErrInvalidRange = errors.New("vlseq: invalid range")
)
