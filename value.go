package canvas

import (
	"image"
	"unsafe"
)

// Value is a fixed-size pixel value that can be passed directly to the
// *Of helpers instead of a byte slice. Its in-memory representation (host
// byte order for integers) is what gets written to the canvas.
//
// Example:
//
//	var rgb565 uint16 = 0xF800
//	err := canvas.FillRectOf(cv, rgb565, image.Rect(0, 0, 10, 10))
type Value interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~[2]byte | ~[3]byte | ~[4]byte
}

// Bytes returns the bytes of *v in memory order. The slice aliases v.
func Bytes[T Value](v *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), unsafe.Sizeof(*v))
}

// SetPixelOf writes v at (x, y).
func SetPixelOf[T Value](c *Canvas, v T, x, y int) error {
	return c.SetPixel(Bytes(&v), x, y)
}

// FillOf fills the canvas with v.
func FillOf[T Value](c *Canvas, v T) error {
	return c.Fill(Bytes(&v))
}

// FillRectOf fills r with v.
func FillRectOf[T Value](c *Canvas, v T, r image.Rectangle) error {
	return c.FillRect(Bytes(&v), r)
}

// DrawRectOf outlines r with v.
func DrawRectOf[T Value](c *Canvas, v T, r image.Rectangle) error {
	return c.DrawRect(Bytes(&v), r)
}

// DrawLineOf draws a line from a to b with v.
func DrawLineOf[T Value](c *Canvas, v T, a, b image.Point) error {
	return c.DrawLine(Bytes(&v), a, b)
}

// DrawCircleOf outlines a circle with v.
func DrawCircleOf[T Value](c *Canvas, v T, center image.Point, r int) error {
	return c.DrawCircle(Bytes(&v), center, r)
}

// FillCircleOf fills a disc with v.
func FillCircleOf[T Value](c *Canvas, v T, center image.Point, r int) error {
	return c.FillCircle(Bytes(&v), center, r)
}

// FillTriangleOf fills the triangle v0, v1, v2 with v.
func FillTriangleOf[T Value](c *Canvas, v T, v0, v1, v2 image.Point) error {
	return c.FillTriangle(Bytes(&v), v0, v1, v2)
}
