// Package text draws fixed-cell bitmap fonts onto a canvas.
//
// A Font is a table of 1-bit glyphs, one per code from FirstCode (space)
// upward, with rows padded to whole bytes. Such tables come from
// microcontroller font headers, or can be generated here from any
// golang.org/x/image font.Face:
//
//	f := text.Basic()                          // 7×13 fixed font
//	f, err := text.ParseTTF(gomono.TTF, 12)    // TrueType at 12 px/em
//	f, err := text.FromFace(face, 8, 16)       // any font.Face
//
// DrawChar writes one glyph cell, foreground for set bits and background
// for clear bits. DrawString transcodes a Go string to single-byte codes
// (ISO 8859-1 by default), draws the codes left to right and wraps when
// the next glyph would reach the last WrapMargin columns:
//
//	end, err := text.DrawString(cv, text.Basic(), white, black, "Hello", 2, 2)
//
// Use a Compositor for a different code page or fallback glyph:
//
//	c := text.Compositor{Encoding: charmap.CodePage437, Fallback: '#'}
//	end, err := c.DrawString(cv, font, white, black, "Größe", 2, 2)
package text
