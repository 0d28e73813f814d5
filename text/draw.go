package text

import (
	"fmt"
	"image"

	"github.com/jonathangjertsen/canvas"
)

// WrapMargin is the number of columns at the right edge of the canvas that
// DrawString keeps free. A glyph that would end inside the margin moves to
// the next line.
const WrapMargin = 5

// DrawChar draws the glyph for code with its top-left corner at (x, y).
//
// Every pixel of the cell is written: set bits with fg, clear bits with bg.
// The whole cell must lie on the canvas. DrawChar does no fallback; use a
// Compositor to substitute missing glyphs.
func DrawChar(cv *canvas.Canvas, f *Font, fg, bg []byte, code byte, x, y int) error {
	if err := f.Validate(); err != nil {
		return err
	}
	glyph, ok := f.Glyph(code)
	if !ok {
		return fmt.Errorf("text: code %#02x: %w", code, ErrGlyphMissing)
	}
	if err := checkCell(cv, f, fg, bg, x, y); err != nil {
		return err
	}
	drawGlyph(cv.Unchecked(), f, glyph, fg, bg, x, y)
	return nil
}

// DrawString draws s with the default Compositor. See Compositor.DrawString.
func DrawString(cv *canvas.Canvas, f *Font, fg, bg []byte, s string, x, y int) (image.Point, error) {
	return Compositor{}.DrawString(cv, f, fg, bg, s, x, y)
}

// drawGlyph walks the glyph bits row by row. The table index advances
// after every eighth column and, for widths that are not a multiple of 8,
// once more at the end of the row to skip the padding bits.
func drawGlyph(u canvas.Unchecked, f *Font, glyph, fg, bg []byte, x, y int) {
	i := 0
	for dy := 0; dy < f.Height; dy++ {
		for dx := 0; dx < f.Width; dx++ {
			px := bg
			if glyph[i]&(0x80>>(dx&7)) != 0 {
				px = fg
			}
			u.SetPixel(px, x+dx, y+dy)
			if dx&7 == 7 {
				i++
			}
		}
		if f.Width&7 != 0 {
			i++
		}
	}
}

func checkCell(cv *canvas.Canvas, f *Font, fg, bg []byte, x, y int) error {
	if cv.Buffer() == nil {
		return canvas.ErrNoMemory
	}
	ps := cv.PixelSize()
	if len(fg) != ps || len(bg) != ps {
		return fmt.Errorf("text: pixels are %d and %d bytes, want %d: %w", len(fg), len(bg), ps, canvas.ErrPixelSize)
	}
	cell := image.Rect(x, y, x+f.Width, y+f.Height)
	if !cell.In(cv.Bounds()) {
		return fmt.Errorf("text: glyph cell %v outside %v: %w", cell, cv.Bounds(), canvas.ErrOutOfBounds)
	}
	return nil
}
