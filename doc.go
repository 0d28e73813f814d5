// Package canvas draws into a fixed-size pixel buffer owned by the caller.
//
// # Overview
//
// canvas is a raster primitive engine for memory-constrained targets such
// as microcontroller displays. It addresses pixels by byte offset, draws
// lines, rectangles, circles and triangles, moves bitmaps in and out of the
// buffer, rotates and flips the whole buffer, and composites bitmap-font
// text (package text). Pixels are opaque records of PixelSize bytes: the
// engine copies them but never interprets them, so packed RGB565, RGB888,
// grayscale or palette indices all work the same way.
//
// # Quick Start
//
//	cv, err := canvas.Init(128, 64, 2)
//	if err != nil {
//	    return err
//	}
//	mem := make([]byte, cv.AllocSize()) // or a static array
//	if err := cv.SetMemory(mem); err != nil {
//	    return err
//	}
//
//	black := []byte{0x00, 0x00}
//	white := []byte{0xFF, 0xFF}
//	_ = cv.Fill(black)
//	_ = cv.DrawLine(white, image.Pt(0, 0), image.Pt(127, 63))
//	_ = canvas.FillCircleOf(cv, uint16(0xF800), image.Pt(64, 32), 20)
//	_ = cv.Rotate180()
//
//	send(cv.Buffer()) // hand the primary buffer to the display driver
//
// # Memory
//
// Init computes sizes only. SetMemory binds caller memory of AllocSize
// bytes, which is twice BufferSize when double buffering is enabled (the
// default) and BufferSize with WithSingleBuffer. The canvas never allocates
// pixel memory.
//
// # Double Buffering
//
// Rotations and flips write their result into the secondary half of the
// memory and then swap halves by toggling an index. Buffer always returns
// the current primary half, so callers must re-read it after a transform.
//
// # Errors
//
// Raw buffer drawing usually trusts its caller, leaving out-of-range
// coordinates undefined. Every method on Canvas validates its arguments and
// returns ErrOutOfBounds, ErrInvalidRegion, ErrPixelSize and friends
// instead. Callers that validate upstream can use Canvas.Unchecked, which
// skips validation; bad input then panics on the Go bounds check rather
// than writing outside the bound memory.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Rectangles are half-open: image.Rect(1, 1, 3, 3) covers x and y in {1, 2}
//
// # Concurrency
//
// A Canvas is not safe for concurrent use and has no internal locking.
package canvas
