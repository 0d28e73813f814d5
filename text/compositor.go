package text

import (
	"fmt"
	"image"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"github.com/jonathangjertsen/canvas"
)

// DefaultFallback is the code drawn in place of codes the font has no
// glyph for.
const DefaultFallback byte = '?'

// Compositor turns Go strings into rows of glyphs.
//
// Strings are transcoded to single-byte codes with Encoding before lookup.
// Runes the encoding cannot represent, and codes outside the font table,
// are drawn as the Fallback glyph. The zero value uses ISO 8859-1 and '?'.
type Compositor struct {
	// Encoding maps runes to glyph codes. Nil means charmap.ISO8859_1.
	Encoding encoding.Encoding

	// Fallback is the code drawn for missing glyphs. Zero means
	// DefaultFallback.
	Fallback byte
}

func (c Compositor) encoding() encoding.Encoding {
	if c.Encoding == nil {
		return charmap.ISO8859_1
	}
	return c.Encoding
}

func (c Compositor) fallback() byte {
	if c.Fallback == 0 {
		return DefaultFallback
	}
	return c.Fallback
}

// Encode returns the glyph codes for s. Unsupported runes become the
// encoding's replacement byte, which DrawString then draws as the fallback
// glyph when the font has no glyph for it.
func (c Compositor) Encode(s string) ([]byte, error) {
	enc := encoding.ReplaceUnsupported(c.encoding().NewEncoder())
	out, err := enc.String(s)
	if err != nil {
		return nil, fmt.Errorf("text: encode %q: %w", s, err)
	}
	return []byte(out), nil
}

// DrawString draws s left to right starting with the top-left corner of
// the first glyph at (x, y), and returns the cursor after the last glyph.
//
// After each glyph the cursor advances by the font width. When the next
// glyph would reach into the last WrapMargin columns of the canvas, the
// cursor returns to x and moves down one font height. Drawing stops at the
// first glyph that does not fit vertically; the returned point is then the
// position of that glyph.
func (c Compositor) DrawString(cv *canvas.Canvas, f *Font, fg, bg []byte, s string, x, y int) (image.Point, error) {
	if err := f.Validate(); err != nil {
		return image.Pt(x, y), err
	}
	codes, err := c.Encode(s)
	if err != nil {
		return image.Pt(x, y), err
	}
	fb := c.fallback()
	if _, ok := f.Glyph(fb); !ok && len(codes) > 0 {
		for _, code := range codes {
			if _, ok := f.Glyph(code); !ok {
				return image.Pt(x, y), fmt.Errorf("text: code %#02x and fallback %#02x: %w", code, fb, ErrGlyphMissing)
			}
		}
	}

	left := x
	limit := cv.Width() - WrapMargin
	for _, code := range codes {
		if _, ok := f.Glyph(code); !ok {
			code = fb
		}
		if err := DrawChar(cv, f, fg, bg, code, x, y); err != nil {
			return image.Pt(x, y), err
		}
		x += f.Width
		if x+f.Width > limit {
			x = left
			y += f.Height
		}
	}
	return image.Pt(x, y), nil
}
