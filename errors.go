package canvas

import "errors"

// Errors returned by the checked drawing API.
//
// The engine was designed for trusted callers, where any of these conditions
// would be undefined behaviour. The checked API reports them instead; the
// [Unchecked] view keeps the trusting contract and panics on out-of-range
// input via the runtime bounds check.
var (
	// ErrInvalidSize is returned by Init for non-positive dimensions or
	// pixel size.
	ErrInvalidSize = errors.New("canvas: invalid size")

	// ErrShortBuffer is returned when caller memory, a bitmap or a scratch
	// buffer is smaller than required.
	ErrShortBuffer = errors.New("canvas: buffer too small")

	// ErrNoMemory is returned when drawing before SetMemory.
	ErrNoMemory = errors.New("canvas: no memory bound")

	// ErrPixelSize is returned when a pixel value does not have exactly
	// PixelSize bytes.
	ErrPixelSize = errors.New("canvas: pixel size mismatch")

	// ErrOutOfBounds is returned when a coordinate or shape leaves the
	// canvas.
	ErrOutOfBounds = errors.New("canvas: out of bounds")

	// ErrInvalidRegion is returned for empty or inverted rectangles and
	// negative radii.
	ErrInvalidRegion = errors.New("canvas: invalid region")

	// ErrScratchAliases is returned when a scratch buffer overlaps the
	// canvas memory.
	ErrScratchAliases = errors.New("canvas: scratch buffer overlaps canvas memory")

	// ErrNotDoubleBuffered is returned by transforms, SwapBuffers and
	// SyncBuffers on a canvas created with WithSingleBuffer.
	ErrNotDoubleBuffered = errors.New("canvas: not double buffered")

	// ErrUnknownFormat is returned for pixel formats without a known size.
	ErrUnknownFormat = errors.New("canvas: unknown pixel format")
)
