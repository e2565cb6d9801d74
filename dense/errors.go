package dense

import "errors"

var (
	// ErrIndexOutOfRange indicates an index tuple or compound value outside the shape bounds.
	ErrIndexOutOfRange = errors.New("dense: index out of range")
	// ErrNilShape indicates that a nil *shape.Shape was supplied.
	ErrNilShape = errors.New("dense: nil shape")
)
