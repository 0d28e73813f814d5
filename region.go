package canvas

import (
	"fmt"
	"image"
)

// regionBytes returns the packed size of r in bytes.
func (c *Canvas) regionBytes(r image.Rectangle) int {
	return r.Dx() * r.Dy() * c.pixelSize
}

// PlaceBitmap copies bitmap into the rectangle r.
//
// bitmap holds r.Dx()*r.Dy() pixels packed row-major with no row padding;
// extra bytes are ignored.
func (c *Canvas) PlaceBitmap(bitmap []byte, r image.Rectangle) error {
	if !c.bound {
		return ErrNoMemory
	}
	if err := c.checkRect(r); err != nil {
		return err
	}
	if n := c.regionBytes(r); len(bitmap) < n {
		return fmt.Errorf("canvas: bitmap is %d bytes, %v needs %d: %w", len(bitmap), r, n, ErrShortBuffer)
	}
	c.Unchecked().PlaceBitmap(bitmap, r)
	return nil
}

// ExtractBitmap copies the rectangle r into dst, packed row-major.
func (c *Canvas) ExtractBitmap(dst []byte, r image.Rectangle) error {
	if !c.bound {
		return ErrNoMemory
	}
	if err := c.checkRect(r); err != nil {
		return err
	}
	if n := c.regionBytes(r); len(dst) < n {
		return fmt.Errorf("canvas: bitmap is %d bytes, %v needs %d: %w", len(dst), r, n, ErrShortBuffer)
	}
	c.Unchecked().ExtractBitmap(dst, r)
	return nil
}

// CopyRegion moves the rectangle src so that its top-left corner lands on
// dst.
//
// The pixels are staged through tmp, which must hold at least the region
// and must not overlap the canvas memory (including the secondary buffer,
// which belongs to the transforms). Because the copy is staged, src and
// the destination rectangle may overlap arbitrarily.
func (c *Canvas) CopyRegion(tmp []byte, src image.Rectangle, dst image.Point) error {
	if !c.bound {
		return ErrNoMemory
	}
	if err := c.checkRect(src); err != nil {
		return err
	}
	if err := c.checkRect(src.Sub(src.Min).Add(dst)); err != nil {
		return err
	}
	if n := c.regionBytes(src); len(tmp) < n {
		return fmt.Errorf("canvas: scratch is %d bytes, %v needs %d: %w", len(tmp), src, n, ErrShortBuffer)
	}
	for _, half := range c.bufs {
		if overlaps(tmp, half) {
			return ErrScratchAliases
		}
	}
	c.Unchecked().CopyRegion(tmp, src, dst)
	return nil
}
