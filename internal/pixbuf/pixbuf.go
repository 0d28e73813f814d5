// Copyright 2026 The canvas Authors
// SPDX-License-Identifier: MIT

// Package pixbuf implements byte-level addressing over row-major pixel
// buffers.
//
// A buffer is a []byte holding width*height pixel records of a fixed size.
// Functions in this package never validate coordinates: callers (the canvas
// package) check bounds once at the API boundary and then call in here.
// An out-of-range coordinate panics with the runtime bounds check instead
// of corrupting neighbouring memory.
package pixbuf

// Offset returns the byte offset of pixel (x, y) in a buffer of the given
// width.
func Offset(width, pixelSize, x, y int) int {
	return (y*width + x) * pixelSize
}

// SetPixel copies pixel into buf at (x, y). The pixel size is len(pixel).
func SetPixel(buf, pixel []byte, width, x, y int) {
	ps := len(pixel)
	i := (y*width + x) * ps
	copy(buf[i:i+ps], pixel)
}

// Pixel returns the pixelSize bytes at (x, y) as a subslice of buf.
func Pixel(buf []byte, pixelSize, width, x, y int) []byte {
	i := (y*width + x) * pixelSize
	return buf[i : i+pixelSize : i+pixelSize]
}

// Fill repeats pixel across the whole of buf.
//
// The first record is written once, then the filled prefix is doubled with
// copy until buf is covered. len(buf) must be a multiple of len(pixel).
func Fill(buf, pixel []byte) {
	if len(buf) == 0 || len(pixel) == 0 {
		return
	}
	n := copy(buf, pixel)
	for n < len(buf) {
		n += copy(buf[n:], buf[:n])
	}
}

// HLine writes pixel at every x in [x0, x1) on row y.
func HLine(buf, pixel []byte, width, x0, x1, y int) {
	ps := len(pixel)
	i := (y*width + x0) * ps
	for x := x0; x < x1; x++ {
		copy(buf[i:i+ps], pixel)
		i += ps
	}
}

// VLine writes pixel at every y in [y0, y1) in column x.
func VLine(buf, pixel []byte, width, x, y0, y1 int) {
	ps := len(pixel)
	stride := width * ps
	i := (y0*width + x) * ps
	for y := y0; y < y1; y++ {
		copy(buf[i:i+ps], pixel)
		i += stride
	}
}

// Span writes pixel at every x in the closed interval [x0, x1] on row y.
// The endpoints may be given in either order.
func Span(buf, pixel []byte, width, x0, x1, y int) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	HLine(buf, pixel, width, x0, x1+1, y)
}

// FillRect writes pixel over the half-open rectangle [x0, x1) × [y0, y1).
//
// A running byte offset walks the rectangle; after each row it skips
// (width - rectWidth) pixels to land on the next row's left edge.
func FillRect(buf, pixel []byte, width, x0, x1, y0, y1 int) {
	ps := len(pixel)
	rw := x1 - x0
	if rw <= 0 || y1 <= y0 {
		return
	}
	skip := (width - rw) * ps
	off := (y0*width + x0) * ps
	for y := y0; y < y1; y++ {
		for i := 0; i < rw; i++ {
			copy(buf[off:off+ps], pixel)
			off += ps
		}
		off += skip
	}
}
