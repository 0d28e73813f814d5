package canvas

import (
	"fmt"
	"image"

	"github.com/jonathangjertsen/canvas/internal/pixbuf"
	"github.com/jonathangjertsen/canvas/raster"
)

// SetPixel writes pixel at (x, y).
func (c *Canvas) SetPixel(pixel []byte, x, y int) error {
	if err := c.checkPixel(pixel); err != nil {
		return err
	}
	if err := c.checkPoint(x, y); err != nil {
		return err
	}
	c.Unchecked().SetPixel(pixel, x, y)
	return nil
}

// PixelAt returns a copy of the pixel at (x, y).
func (c *Canvas) PixelAt(x, y int) ([]byte, error) {
	if !c.bound {
		return nil, ErrNoMemory
	}
	if err := c.checkPoint(x, y); err != nil {
		return nil, err
	}
	p := pixbuf.Pixel(c.Buffer(), c.pixelSize, c.width, x, y)
	return append([]byte(nil), p...), nil
}

// Fill writes pixel to every pixel of the canvas.
func (c *Canvas) Fill(pixel []byte) error {
	if err := c.checkPixel(pixel); err != nil {
		return err
	}
	c.Unchecked().Fill(pixel)
	return nil
}

// DrawHLine writes pixel over the half-open span [x0, x1) on row y.
func (c *Canvas) DrawHLine(pixel []byte, x0, x1, y int) error {
	if err := c.checkPixel(pixel); err != nil {
		return err
	}
	if err := c.checkRect(image.Rectangle{Min: image.Pt(x0, y), Max: image.Pt(x1, y+1)}); err != nil {
		return err
	}
	c.Unchecked().DrawHLine(pixel, x0, x1, y)
	return nil
}

// DrawVLine writes pixel over the half-open span [y0, y1) in column x.
func (c *Canvas) DrawVLine(pixel []byte, x, y0, y1 int) error {
	if err := c.checkPixel(pixel); err != nil {
		return err
	}
	if err := c.checkRect(image.Rectangle{Min: image.Pt(x, y0), Max: image.Pt(x+1, y1)}); err != nil {
		return err
	}
	c.Unchecked().DrawVLine(pixel, x, y0, y1)
	return nil
}

// DrawRect outlines the half-open rectangle r. Its last drawn column is
// r.Max.X-1 and its last drawn row r.Max.Y-1; all four corners are drawn.
func (c *Canvas) DrawRect(pixel []byte, r image.Rectangle) error {
	if err := c.checkPixel(pixel); err != nil {
		return err
	}
	if err := c.checkRect(r); err != nil {
		return err
	}
	c.Unchecked().DrawRect(pixel, r)
	return nil
}

// FillRect fills the half-open rectangle r.
func (c *Canvas) FillRect(pixel []byte, r image.Rectangle) error {
	if err := c.checkPixel(pixel); err != nil {
		return err
	}
	if err := c.checkRect(r); err != nil {
		return err
	}
	c.Unchecked().FillRect(pixel, r)
	return nil
}

// DrawLine draws a line from a to b.
//
// The default rasterizer includes both endpoints and draws the same pixels
// for (a, b) and (b, a). With WithLegacyLines the end point is excluded and
// the output may drift away from the ideal line; every generated pixel is
// then checked against the canvas before anything is drawn.
func (c *Canvas) DrawLine(pixel []byte, a, b image.Point) error {
	if err := c.checkPixel(pixel); err != nil {
		return err
	}
	if err := c.checkPoint(a.X, a.Y); err != nil {
		return err
	}
	if err := c.checkPoint(b.X, b.Y); err != nil {
		return err
	}
	if c.opts.legacyLines {
		var err error
		raster.LegacyLine(a.X, a.Y, b.X, b.Y, func(x, y int) {
			if err == nil {
				err = c.checkPoint(x, y)
			}
		})
		if err != nil {
			return fmt.Errorf("canvas: legacy line %v-%v: %w", a, b, err)
		}
	}
	c.Unchecked().DrawLine(pixel, a, b)
	return nil
}

// DrawCircle outlines the circle of radius r around center. The whole
// circle must fit on the canvas.
func (c *Canvas) DrawCircle(pixel []byte, center image.Point, r int) error {
	if err := c.checkCircle(pixel, center, r); err != nil {
		return err
	}
	c.Unchecked().DrawCircle(pixel, center, r)
	return nil
}

// FillCircle fills the disc of radius r around center. The whole disc must
// fit on the canvas.
func (c *Canvas) FillCircle(pixel []byte, center image.Point, r int) error {
	if err := c.checkCircle(pixel, center, r); err != nil {
		return err
	}
	c.Unchecked().FillCircle(pixel, center, r)
	return nil
}

func (c *Canvas) checkCircle(pixel []byte, center image.Point, r int) error {
	if err := c.checkPixel(pixel); err != nil {
		return err
	}
	if r < 0 {
		return fmt.Errorf("canvas: radius %d: %w", r, ErrInvalidRegion)
	}
	if b := raster.CircleBounds(center.X, center.Y, r); !b.In(c.Bounds()) {
		return fmt.Errorf("canvas: circle %v outside %v: %w", b, c.Bounds(), ErrOutOfBounds)
	}
	return nil
}

// FillTriangle fills the triangle v0, v1, v2.
//
// The vertices must be in clockwise order on screen (raster.Clockwise);
// counter-clockwise and degenerate triangles fill nothing and are not an
// error. Pixels on the triangle's edges are not filled. The vertices'
// bounding box, taken as the half-open rectangle [min, max), must lie on
// the canvas.
func (c *Canvas) FillTriangle(pixel []byte, v0, v1, v2 image.Point) error {
	if err := c.checkPixel(pixel); err != nil {
		return err
	}
	for _, p := range [...]image.Point{v0, v1, v2} {
		if p.X < 0 || p.X > c.width || p.Y < 0 || p.Y > c.height {
			return fmt.Errorf("canvas: vertex %v outside %v: %w", p, c.Bounds(), ErrOutOfBounds)
		}
	}
	c.Unchecked().FillTriangle(pixel, v0, v1, v2)
	return nil
}
