package canvas

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"
)

func TestFormatInfo(t *testing.T) {
	tests := []struct {
		format Format
		bpp    int
		name   string
	}{
		{FormatRaw, 0, "Raw"},
		{FormatGray8, 1, "Gray8"},
		{FormatRGB565, 2, "RGB565"},
		{FormatRGB888, 3, "RGB888"},
		{FormatRGBA8888, 4, "RGBA8888"},
		{FormatBGRA8888, 4, "BGRA8888"},
		{formatCount, 0, "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.format.BytesPerPixel(); got != tt.bpp {
				t.Errorf("BytesPerPixel() = %d, want %d", got, tt.bpp)
			}
			if got := tt.format.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
		})
	}
}

func TestFormatTexture(t *testing.T) {
	for _, f := range []Format{FormatGray8, FormatRGBA8888, FormatBGRA8888} {
		tf := f.Texture()
		if tf == gputypes.TextureFormatUndefined {
			t.Errorf("%v.Texture() is undefined", f)
			continue
		}
		back, err := FormatFromTexture(tf)
		if err != nil || back != f {
			t.Errorf("FormatFromTexture(%v.Texture()) = %v, %v", f, back, err)
		}
	}
	for _, f := range []Format{FormatRaw, FormatRGB565, FormatRGB888} {
		if tf := f.Texture(); tf != gputypes.TextureFormatUndefined {
			t.Errorf("%v.Texture() = %v, want undefined", f, tf)
		}
	}
	if _, err := FormatFromTexture(gputypes.TextureFormatUndefined); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("FormatFromTexture(undefined) error = %v, want ErrUnknownFormat", err)
	}
}

func TestInitFormat(t *testing.T) {
	cv, err := InitFormat(10, 5, FormatRGB565)
	if err != nil {
		t.Fatal(err)
	}
	if cv.PixelSize() != 2 || cv.Format() != FormatRGB565 || cv.AllocSize() != 200 {
		t.Errorf("InitFormat(RGB565) = ps %d, %v, alloc %d", cv.PixelSize(), cv.Format(), cv.AllocSize())
	}
	if _, err := InitFormat(10, 5, FormatRaw); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("InitFormat(Raw) error = %v, want ErrUnknownFormat", err)
	}
	if _, err := InitFormat(0, 5, FormatGray8); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("InitFormat(0 wide) error = %v, want ErrInvalidSize", err)
	}
}
