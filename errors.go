package canvas

import "errors"

// Common errors for canvas operations.
//
// An empty region is never an error: operations whose resolved rectangle
// is empty after clipping return nil and draw nothing.
var (
	// ErrInvalidSize is returned when width or height is zero or negative.
	ErrInvalidSize = errors.New("canvas: invalid size")

	// ErrTooLarge is returned when width or height exceeds MaxDimension.
	ErrTooLarge = errors.New("canvas: size exceeds maximum dimension")

	// ErrAllocation is returned when the byte size of a canvas would
	// overflow or exceed MaxBytes.
	ErrAllocation = errors.New("canvas: allocation failed")

	// ErrUnsupportedColorType is returned by paths that only implement
	// ColorARGB8888 when given another color type.
	ErrUnsupportedColorType = errors.New("canvas: unsupported color type")

	// ErrReadOnly is returned when mutating through a read-only view.
	ErrReadOnly = errors.New("canvas: view is read-only")

	// ErrStaleView is returned when a view is used after its canvas was
	// freed or recreated.
	ErrStaleView = errors.New("canvas: view outlived its canvas")

	// ErrOutOfBounds is returned when pixel coordinates are outside a view.
	ErrOutOfBounds = errors.New("canvas: coordinates out of bounds")
)
