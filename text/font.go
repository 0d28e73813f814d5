package text

import "fmt"

const (
	// FirstCode is the code of the first glyph in every table.
	FirstCode byte = ' '

	// LastCode is the last code FromFace renders.
	LastCode byte = '~'
)

// Font is a fixed-cell bitmap font.
//
// Table holds one glyph per code starting at FirstCode. A glyph is Height
// rows of RowBytes bytes each; bits are read most significant first, and
// the unused low bits of a row's last byte are padding. This is the layout
// of the STM32 sFONT tables, so those can be used as-is.
//
// A Font is read-only once built and may be shared between goroutines.
type Font struct {
	Width  int
	Height int
	Table  []byte
}

// RowBytes returns the number of table bytes per glyph row.
func (f *Font) RowBytes() int {
	return (f.Width + 7) / 8
}

// GlyphBytes returns the number of table bytes per glyph.
func (f *Font) GlyphBytes() int {
	return f.Height * f.RowBytes()
}

// Glyphs returns the number of complete glyphs in the table.
func (f *Font) Glyphs() int {
	n := f.GlyphBytes()
	if n <= 0 {
		return 0
	}
	return len(f.Table) / n
}

// Validate reports ErrInvalidFont if f cannot be drawn.
func (f *Font) Validate() error {
	if f == nil {
		return fmt.Errorf("text: nil font: %w", ErrInvalidFont)
	}
	if f.Width <= 0 || f.Height <= 0 {
		return fmt.Errorf("text: cell %dx%d: %w", f.Width, f.Height, ErrInvalidFont)
	}
	if len(f.Table) < f.GlyphBytes() {
		return fmt.Errorf("text: table is %d bytes, one glyph needs %d: %w", len(f.Table), f.GlyphBytes(), ErrInvalidFont)
	}
	return nil
}

// Glyph returns the table bytes of the glyph for code.
func (f *Font) Glyph(code byte) ([]byte, bool) {
	if code < FirstCode {
		return nil, false
	}
	i := int(code - FirstCode)
	if i >= f.Glyphs() {
		return nil, false
	}
	n := f.GlyphBytes()
	return f.Table[i*n : (i+1)*n], true
}

// Bit reports whether the glyph pixel at (dx, dy) is set.
func (f *Font) Bit(glyph []byte, dx, dy int) bool {
	return glyph[dy*f.RowBytes()+dx/8]&(0x80>>(dx&7)) != 0
}
