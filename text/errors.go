package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrInvalidFont is returned for fonts with a non-positive cell size or
	// a table too short to hold a single glyph.
	ErrInvalidFont = errors.New("text: invalid font")

	// ErrGlyphMissing is returned when neither a code nor the fallback code
	// has a glyph in the font table.
	ErrGlyphMissing = errors.New("text: glyph missing")

	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")
)
