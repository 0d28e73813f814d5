package canvas

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// Format names a pixel layout for sizing a canvas.
//
// Formats only determine the pixel size. The engine still treats pixels as
// opaque byte records and never converts between formats.
type Format uint8

const (
	// FormatRaw is an unnamed format; the pixel size comes from Init.
	FormatRaw Format = iota

	// FormatGray8 is 8-bit grayscale or indexed color (1 byte per pixel).
	FormatGray8

	// FormatRGB565 is 16-bit packed RGB, common on SPI displays (2 bytes).
	FormatRGB565

	// FormatRGB888 is 24-bit RGB (3 bytes per pixel).
	FormatRGB888

	// FormatRGBA8888 is 32-bit RGBA (4 bytes per pixel).
	FormatRGBA8888

	// FormatBGRA8888 is 32-bit BGRA (4 bytes per pixel).
	FormatBGRA8888

	// formatCount is the number of formats (for internal use).
	formatCount
)

// FormatInfo contains metadata about a pixel format.
type FormatInfo struct {
	// BytesPerPixel is the number of bytes per pixel.
	BytesPerPixel int

	// Name is a short human-readable name.
	Name string
}

// formatInfoTable contains metadata for each format.
var formatInfoTable = [formatCount]FormatInfo{
	FormatRaw:      {BytesPerPixel: 0, Name: "Raw"},
	FormatGray8:    {BytesPerPixel: 1, Name: "Gray8"},
	FormatRGB565:   {BytesPerPixel: 2, Name: "RGB565"},
	FormatRGB888:   {BytesPerPixel: 3, Name: "RGB888"},
	FormatRGBA8888: {BytesPerPixel: 4, Name: "RGBA8888"},
	FormatBGRA8888: {BytesPerPixel: 4, Name: "BGRA8888"},
}

// Info returns the FormatInfo for this format.
func (f Format) Info() FormatInfo {
	if f >= formatCount {
		return FormatInfo{Name: "Unknown"}
	}
	return formatInfoTable[f]
}

// BytesPerPixel returns the number of bytes per pixel, or 0 for FormatRaw
// and unknown formats.
func (f Format) BytesPerPixel() int {
	return f.Info().BytesPerPixel
}

// String returns a string representation of the format.
func (f Format) String() string {
	return f.Info().Name
}

// Texture returns the GPU texture format with the same byte layout, or
// gputypes.TextureFormatUndefined when there is none.
func (f Format) Texture() gputypes.TextureFormat {
	switch f {
	case FormatGray8:
		return gputypes.TextureFormatR8Unorm
	case FormatRGBA8888:
		return gputypes.TextureFormatRGBA8Unorm
	case FormatBGRA8888:
		return gputypes.TextureFormatBGRA8Unorm
	default:
		return gputypes.TextureFormatUndefined
	}
}

// FormatFromTexture returns the Format matching a GPU texture format, for
// hosts that upload the canvas buffer to a texture.
func FormatFromTexture(tf gputypes.TextureFormat) (Format, error) {
	switch tf {
	case gputypes.TextureFormatR8Unorm:
		return FormatGray8, nil
	case gputypes.TextureFormatRGBA8Unorm:
		return FormatRGBA8888, nil
	case gputypes.TextureFormatBGRA8Unorm:
		return FormatBGRA8888, nil
	default:
		return FormatRaw, fmt.Errorf("canvas: texture format %v: %w", tf, ErrUnknownFormat)
	}
}

// InitFormat is Init with the pixel size taken from f.
func InitFormat(width, height int, f Format, opts ...Option) (*Canvas, error) {
	ps := f.BytesPerPixel()
	if ps == 0 {
		return nil, fmt.Errorf("canvas: format %v: %w", f, ErrUnknownFormat)
	}
	c, err := Init(width, height, ps, opts...)
	if err != nil {
		return nil, err
	}
	c.format = f
	return c, nil
}
