package text

import (
	"fmt"
	"hash/maphash"
	"image"
	"log/slog"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/jonathangjertsen/canvas"
)

// coverage is the alpha at or above which a rasterized pixel becomes a set
// bit.
const coverage = 0x80

// FromFace renders the printable ASCII glyphs of face into a Font with
// cells of cellW×cellH pixels.
//
// Each glyph is drawn with its dot at the left edge of the cell on the
// face's ascent line, then thresholded at 50% coverage. Pixels that fall
// outside the cell are cut off. Runes the face lacks become blank glyphs.
func FromFace(face font.Face, cellW, cellH int) (*Font, error) {
	if cellW <= 0 || cellH <= 0 {
		return nil, fmt.Errorf("text: cell %dx%d: %w", cellW, cellH, ErrInvalidFont)
	}
	f := &Font{Width: cellW, Height: cellH}
	n := int(LastCode-FirstCode) + 1
	f.Table = make([]byte, n*f.GlyphBytes())

	mask := image.NewAlpha(image.Rect(0, 0, cellW, cellH))
	d := &font.Drawer{
		Dst:  mask,
		Src:  image.Opaque,
		Face: face,
	}
	baseline := face.Metrics().Ascent.Ceil()
	for i := 0; i < n; i++ {
		clear(mask.Pix)
		d.Dot = fixed.P(0, baseline)
		d.DrawString(string(rune(FirstCode) + rune(i)))
		pack(f, f.Table[i*f.GlyphBytes():(i+1)*f.GlyphBytes()], mask)
	}

	canvas.Logger().Info("text: glyph table generated",
		slog.Int("glyphs", n),
		slog.Int("width", cellW),
		slog.Int("height", cellH))
	return f, nil
}

// pack thresholds mask into glyph, MSB first with byte-padded rows.
func pack(f *Font, glyph []byte, mask *image.Alpha) {
	rb := f.RowBytes()
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			if mask.AlphaAt(x, y).A >= coverage {
				glyph[y*rb+x/8] |= 0x80 >> (x & 7)
			}
		}
	}
}

// ParseTTF builds a Font from TrueType or OpenType data at size pixels per
// em.
//
// The cell is as wide as the advance of 'M' and as tall as ascent plus
// descent, which suits monospaced fonts. Results are cached by content and
// size, so repeated calls with the same data return the same *Font.
func ParseTTF(data []byte, size float64) (*Font, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	key := tableKey{sum: maphash.Bytes(seed, data), n: len(data), size: size}
	if f, ok := tables.Get(key); ok {
		return f, nil
	}

	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: parse font: %w", err)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("text: face at size %v: %w", size, err)
	}
	defer func() {
		_ = face.Close()
	}()

	adv, ok := face.GlyphAdvance('M')
	if !ok {
		return nil, fmt.Errorf("text: font has no 'M' to size cells: %w", ErrInvalidFont)
	}
	m := face.Metrics()
	f, err := FromFace(face, adv.Ceil(), (m.Ascent + m.Descent).Ceil())
	if err != nil {
		return nil, err
	}
	tables.Set(key, f)
	return f, nil
}

var seed = maphash.MakeSeed()

// Basic returns the 7×13 fixed font from golang.org/x/image/font/basicfont
// as a Font. It is built once and shared.
func Basic() *Font { return basicFont() }

var basicFont = sync.OnceValue(func() *Font {
	f, err := FromFace(basicfont.Face7x13, 7, 13)
	if err != nil {
		panic(err)
	}
	return f
})
