package canvas

import (
	"fmt"
	"image"
	"log/slog"
	"math"
	"unsafe"
)

// Canvas is a drawing handle over caller-owned pixel memory.
//
// A Canvas is created in two steps. Init computes every size from the
// dimensions and pixel size but holds no memory; SetMemory then binds a
// caller-provided slice of at least AllocSize bytes. The Canvas never
// allocates or frees pixel memory.
//
// When double buffering is enabled (the default) the bound memory is split
// into two equal halves. One is primary: it is what Buffer returns and what
// every drawing call reads and writes. The other is secondary: whole-buffer
// transforms write their full result there and then swap the two by
// toggling an index. No bytes are copied by a swap.
//
// A Canvas is not safe for concurrent use. Callers sharing one across
// goroutines must serialize access, including during transforms.
type Canvas struct {
	width      int
	height     int
	pixelSize  int
	bufferSize int
	allocSize  int
	format     Format

	// bufs holds the two halves of the bound memory. bufs[1] is nil for a
	// single-buffered canvas.
	bufs   [2][]byte
	active int
	bound  bool

	opts options
}

// Init returns a Canvas sized for width×height pixels of pixelSize bytes.
//
// Init touches no memory. Call SetMemory with at least AllocSize bytes
// before drawing.
func Init(width, height, pixelSize int, opts ...Option) (*Canvas, error) {
	if width <= 0 || height <= 0 || pixelSize <= 0 {
		return nil, fmt.Errorf("canvas: %dx%d with %d-byte pixels: %w", width, height, pixelSize, ErrInvalidSize)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if width > math.MaxInt/height || width*height > math.MaxInt/pixelSize {
		return nil, fmt.Errorf("canvas: %dx%d with %d-byte pixels overflows: %w", width, height, pixelSize, ErrInvalidSize)
	}
	size := width * height * pixelSize
	alloc := size
	if !o.singleBuffer {
		if size > math.MaxInt/2 {
			return nil, fmt.Errorf("canvas: double buffer of %d bytes overflows: %w", size, ErrInvalidSize)
		}
		alloc = size * 2
	}
	return &Canvas{
		width:      width,
		height:     height,
		pixelSize:  pixelSize,
		bufferSize: size,
		allocSize:  alloc,
		opts:       o,
	}, nil
}

// SetMemory binds mem as the canvas backing store.
//
// The first BufferSize bytes become the primary buffer and, when double
// buffered, the next BufferSize bytes the secondary buffer. Bytes beyond
// AllocSize are left untouched. Binding resets the swap state, so Buffer
// returns the start of mem afterwards.
//
// The caller keeps ownership of mem and must keep it alive for as long as
// the Canvas is used.
func (c *Canvas) SetMemory(mem []byte) error {
	if len(mem) < c.allocSize {
		return fmt.Errorf("canvas: memory is %d bytes, need %d: %w", len(mem), c.allocSize, ErrShortBuffer)
	}
	n := c.bufferSize
	c.bufs[0] = mem[:n:n]
	c.bufs[1] = nil
	if !c.opts.singleBuffer {
		c.bufs[1] = mem[n : 2*n : 2*n]
	}
	c.active = 0
	c.bound = true

	Logger().Debug("canvas: memory bound",
		slog.Int("width", c.width),
		slog.Int("height", c.height),
		slog.Int("pixel_size", c.pixelSize),
		slog.Int("alloc_size", c.allocSize),
		slog.Bool("double_buffered", c.DoubleBuffered()))
	return nil
}

// Width returns the current width in pixels. Quarter-turn rotations
// exchange width and height.
func (c *Canvas) Width() int { return c.width }

// Height returns the current height in pixels.
func (c *Canvas) Height() int { return c.height }

// PixelSize returns the number of bytes per pixel.
func (c *Canvas) PixelSize() int { return c.pixelSize }

// BufferSize returns width*height*pixelSize, the size of one buffer.
func (c *Canvas) BufferSize() int { return c.bufferSize }

// AllocSize returns the number of bytes SetMemory requires.
func (c *Canvas) AllocSize() int { return c.allocSize }

// Format returns the pixel format given to InitFormat, or FormatRaw.
func (c *Canvas) Format() Format { return c.format }

// Bounds returns the canvas rectangle, with its origin at (0, 0).
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// Buffer returns the primary buffer. It is nil before SetMemory.
//
// The returned slice aliases the caller's memory and is only valid until
// the next transform or swap, which makes the other half primary.
func (c *Canvas) Buffer() []byte {
	return c.bufs[c.active]
}

// DoubleBuffered reports whether the canvas has a secondary buffer.
func (c *Canvas) DoubleBuffered() bool {
	return !c.opts.singleBuffer
}

// Swapped reports whether the primary buffer is currently the second half
// of the bound memory. Every transform toggles it.
func (c *Canvas) Swapped() bool {
	return c.active == 1
}

// secondary returns the buffer that transforms write into.
func (c *Canvas) secondary() []byte {
	return c.bufs[1-c.active]
}

// SwapBuffers exchanges the primary and secondary buffers. It is O(1) and
// copies nothing.
func (c *Canvas) SwapBuffers() error {
	if err := c.checkDouble(); err != nil {
		return err
	}
	c.swap()
	return nil
}

func (c *Canvas) swap() {
	c.active = 1 - c.active
}

// SyncBuffers copies the primary buffer into the secondary buffer.
//
// Transforms overwrite the whole secondary buffer, so syncing is never
// needed for them; it exists to put the secondary half in a known state,
// for example before inspecting both halves in a test.
func (c *Canvas) SyncBuffers() error {
	if err := c.checkDouble(); err != nil {
		return err
	}
	copy(c.secondary(), c.Buffer())
	return nil
}

func (c *Canvas) checkDouble() error {
	if !c.bound {
		return ErrNoMemory
	}
	if c.opts.singleBuffer {
		return ErrNotDoubleBuffered
	}
	return nil
}

// checkPixel validates that memory is bound and pixel has the right size.
func (c *Canvas) checkPixel(pixel []byte) error {
	if !c.bound {
		return ErrNoMemory
	}
	if len(pixel) != c.pixelSize {
		return fmt.Errorf("canvas: pixel is %d bytes, want %d: %w", len(pixel), c.pixelSize, ErrPixelSize)
	}
	return nil
}

// checkPoint validates 0 <= x < width and 0 <= y < height.
func (c *Canvas) checkPoint(x, y int) error {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return fmt.Errorf("canvas: point (%d,%d) outside %dx%d: %w", x, y, c.width, c.height, ErrOutOfBounds)
	}
	return nil
}

// checkRect validates a non-empty half-open rectangle inside the canvas.
func (c *Canvas) checkRect(r image.Rectangle) error {
	if r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y {
		return fmt.Errorf("canvas: rectangle %v: %w", r, ErrInvalidRegion)
	}
	if !r.In(c.Bounds()) {
		return fmt.Errorf("canvas: rectangle %v outside %v: %w", r, c.Bounds(), ErrOutOfBounds)
	}
	return nil
}

// overlaps reports whether a and b share any byte.
func overlaps(a, b []byte) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	a0 := uintptr(unsafe.Pointer(unsafe.SliceData(a)))
	b0 := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	return a0 < b0+uintptr(len(b)) && b0 < a0+uintptr(len(a))
}
