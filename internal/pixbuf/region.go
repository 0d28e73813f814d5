// Copyright 2026 The canvas Authors
// SPDX-License-Identifier: MIT

package pixbuf

// Place copies a packed bitmap into buf over [x0, x1) × [y0, y1).
//
// bitmap holds (x1-x0)*(y1-y0) pixel records in row-major order with no
// padding between rows.
func Place(buf, bitmap []byte, width, pixelSize, x0, x1, y0, y1 int) {
	row := (x1 - x0) * pixelSize
	if row <= 0 {
		return
	}
	stride := width * pixelSize
	off := (y0*width + x0) * pixelSize
	src := 0
	for y := y0; y < y1; y++ {
		copy(buf[off:off+row], bitmap[src:src+row])
		off += stride
		src += row
	}
}

// Extract copies the rectangle [x0, x1) × [y0, y1) of buf into bitmap,
// packed row-major with no padding.
func Extract(buf, bitmap []byte, width, pixelSize, x0, x1, y0, y1 int) {
	row := (x1 - x0) * pixelSize
	if row <= 0 {
		return
	}
	stride := width * pixelSize
	off := (y0*width + x0) * pixelSize
	dst := 0
	for y := y0; y < y1; y++ {
		copy(bitmap[dst:dst+row], buf[off:off+row])
		off += stride
		dst += row
	}
}

// CopyRegion moves the rectangle [x0, x1) × [y0, y1) so that its top-left
// corner lands on (dx, dy). The region is staged through tmp, which must
// not alias buf and must hold at least the region's bytes. Overlapping
// source and destination rectangles are therefore safe.
func CopyRegion(buf, tmp []byte, width, pixelSize, x0, x1, y0, y1, dx, dy int) {
	Extract(buf, tmp, width, pixelSize, x0, x1, y0, y1)
	Place(buf, tmp, width, pixelSize, dx, dx+x1-x0, dy, dy+y1-y0)
}
