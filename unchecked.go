package canvas

import (
	"image"

	"github.com/jonathangjertsen/canvas/internal/pixbuf"
	"github.com/jonathangjertsen/canvas/raster"
)

// Unchecked is a view of a Canvas that skips all argument validation.
//
// It is the fast path for callers that have already validated their
// coordinates. Methods mirror the checked API but return nothing. Invalid
// input (coordinates outside the canvas, pixels of the wrong size, use
// before SetMemory) is a caller bug: it either panics through the Go
// runtime bounds check or draws into the wrong pixel, but never writes
// outside the bound memory.
type Unchecked struct {
	c *Canvas
}

// Unchecked returns the unchecked view of c.
func (c *Canvas) Unchecked() Unchecked {
	return Unchecked{c: c}
}

// SetPixel writes pixel at (x, y).
func (u Unchecked) SetPixel(pixel []byte, x, y int) {
	pixbuf.SetPixel(u.c.Buffer(), pixel, u.c.width, x, y)
}

// Fill writes pixel to every pixel of the primary buffer.
func (u Unchecked) Fill(pixel []byte) {
	pixbuf.Fill(u.c.Buffer(), pixel)
}

// DrawHLine writes pixel over [x0, x1) on row y.
func (u Unchecked) DrawHLine(pixel []byte, x0, x1, y int) {
	pixbuf.HLine(u.c.Buffer(), pixel, u.c.width, x0, x1, y)
}

// DrawVLine writes pixel over [y0, y1) in column x.
func (u Unchecked) DrawVLine(pixel []byte, x, y0, y1 int) {
	pixbuf.VLine(u.c.Buffer(), pixel, u.c.width, x, y0, y1)
}

// DrawRect outlines r. The last drawn column and row are r.Max.X-1 and
// r.Max.Y-1.
func (u Unchecked) DrawRect(pixel []byte, r image.Rectangle) {
	buf, w := u.c.Buffer(), u.c.width
	raster.RectEdges(r.Min.X, r.Max.X, r.Min.Y, r.Max.Y,
		func(x0, x1, y int) { pixbuf.HLine(buf, pixel, w, x0, x1, y) },
		func(x, y0, y1 int) { pixbuf.VLine(buf, pixel, w, x, y0, y1) })
}

// FillRect fills r.
func (u Unchecked) FillRect(pixel []byte, r image.Rectangle) {
	pixbuf.FillRect(u.c.Buffer(), pixel, u.c.width, r.Min.X, r.Max.X, r.Min.Y, r.Max.Y)
}

// DrawLine draws a line from a to b with the canvas line rasterizer.
func (u Unchecked) DrawLine(pixel []byte, a, b image.Point) {
	u.lineFunc()(a.X, a.Y, b.X, b.Y, u.plot(pixel))
}

// DrawCircle outlines the circle of radius r around center.
func (u Unchecked) DrawCircle(pixel []byte, center image.Point, r int) {
	raster.Circle(center.X, center.Y, r, u.plot(pixel))
}

// FillCircle fills the disc of radius r around center.
func (u Unchecked) FillCircle(pixel []byte, center image.Point, r int) {
	buf, w := u.c.Buffer(), u.c.width
	raster.FillCircle(center.X, center.Y, r, func(x0, x1, y int) {
		pixbuf.Span(buf, pixel, w, x0, x1, y)
	})
}

// FillTriangle fills the triangle a, b, c. Only clockwise triangles (see
// raster.Winding) produce pixels.
func (u Unchecked) FillTriangle(pixel []byte, a, b, c image.Point) {
	raster.FillTriangle(a, b, c, u.plot(pixel))
}

// PlaceBitmap copies a packed bitmap into r.
func (u Unchecked) PlaceBitmap(bitmap []byte, r image.Rectangle) {
	pixbuf.Place(u.c.Buffer(), bitmap, u.c.width, u.c.pixelSize, r.Min.X, r.Max.X, r.Min.Y, r.Max.Y)
}

// ExtractBitmap copies r out of the canvas into dst, packed row-major.
func (u Unchecked) ExtractBitmap(dst []byte, r image.Rectangle) {
	pixbuf.Extract(u.c.Buffer(), dst, u.c.width, u.c.pixelSize, r.Min.X, r.Max.X, r.Min.Y, r.Max.Y)
}

// CopyRegion moves src so that its top-left corner lands on dst, staging
// the pixels through tmp.
func (u Unchecked) CopyRegion(tmp []byte, src image.Rectangle, dst image.Point) {
	pixbuf.CopyRegion(u.c.Buffer(), tmp, u.c.width, u.c.pixelSize,
		src.Min.X, src.Max.X, src.Min.Y, src.Max.Y, dst.X, dst.Y)
}

func (u Unchecked) plot(pixel []byte) raster.Plot {
	buf, w := u.c.Buffer(), u.c.width
	return func(x, y int) { pixbuf.SetPixel(buf, pixel, w, x, y) }
}

func (u Unchecked) lineFunc() func(x0, y0, x1, y1 int, plot raster.Plot) {
	if u.c.opts.legacyLines {
		return raster.LegacyLine
	}
	return raster.Line
}
