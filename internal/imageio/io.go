// Copyright 2026 The canvas Authors
// SPDX-License-Identifier: MIT

// Package imageio converts canvas buffers to and from standard images, for
// previews and for loading bitmaps on the host.
package imageio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // register JPEG for Decode
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/jonathangjertsen/canvas"
)

// ErrUnsupportedFormat is returned for canvas formats without a color
// interpretation, such as FormatRaw.
var ErrUnsupportedFormat = errors.New("imageio: unsupported format")

// RGB565 values are read and written in host byte order, matching
// canvas.FillOf and friends with a uint16 argument.

func rgb565(p []byte) color.NRGBA {
	v := binary.NativeEndian.Uint16(p)
	r, g, b := uint8(v>>11&0x1F), uint8(v>>5&0x3F), uint8(v&0x1F)
	return color.NRGBA{R: r<<3 | r>>2, G: g<<2 | g>>4, B: b<<3 | b>>2, A: 0xFF}
}

func putRGB565(p []byte, c color.NRGBA) {
	v := uint16(c.R>>3)<<11 | uint16(c.G>>2)<<5 | uint16(c.B>>3)
	binary.NativeEndian.PutUint16(p, v)
}

// ToImage copies the primary buffer of cv into a standard image according
// to cv.Format().
func ToImage(cv *canvas.Canvas) (image.Image, error) {
	buf := cv.Buffer()
	if buf == nil {
		return nil, canvas.ErrNoMemory
	}
	w, h := cv.Width(), cv.Height()
	r := image.Rect(0, 0, w, h)

	switch cv.Format() {
	case canvas.FormatGray8:
		img := image.NewGray(r)
		copy(img.Pix, buf)
		return img, nil
	case canvas.FormatRGBA8888:
		img := image.NewNRGBA(r)
		copy(img.Pix, buf)
		return img, nil
	case canvas.FormatBGRA8888:
		img := image.NewNRGBA(r)
		for i := 0; i < len(buf); i += 4 {
			img.Pix[i+0] = buf[i+2]
			img.Pix[i+1] = buf[i+1]
			img.Pix[i+2] = buf[i+0]
			img.Pix[i+3] = buf[i+3]
		}
		return img, nil
	case canvas.FormatRGB888:
		img := image.NewNRGBA(r)
		for i, j := 0, 0; i < len(buf); i, j = i+3, j+4 {
			copy(img.Pix[j:j+3], buf[i:i+3])
			img.Pix[j+3] = 0xFF
		}
		return img, nil
	case canvas.FormatRGB565:
		img := image.NewNRGBA(r)
		for i, j := 0, 0; i < len(buf); i, j = i+2, j+4 {
			c := rgb565(buf[i : i+2])
			img.Pix[j], img.Pix[j+1], img.Pix[j+2], img.Pix[j+3] = c.R, c.G, c.B, c.A
		}
		return img, nil
	default:
		return nil, fmt.Errorf("imageio: format %v: %w", cv.Format(), ErrUnsupportedFormat)
	}
}

// EncodePNG writes the primary buffer of cv to w as PNG.
func EncodePNG(w io.Writer, cv *canvas.Canvas) error {
	img, err := ToImage(cv)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("imageio: encode PNG: %w", err)
	}
	return nil
}

// SavePNG writes the primary buffer of cv to a PNG file.
func SavePNG(path string, cv *canvas.Canvas) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("imageio: create file: %w", err)
	}

	if err := EncodePNG(f, cv); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// Bitmap packs img into a row-major bitmap of pixels in format f, ready
// for Canvas.PlaceBitmap over a rectangle of img's size.
func Bitmap(img image.Image, f canvas.Format) ([]byte, error) {
	ps := f.BytesPerPixel()
	if ps == 0 {
		return nil, fmt.Errorf("imageio: format %v: %w", f, ErrUnsupportedFormat)
	}
	b := img.Bounds()
	out := make([]byte, b.Dx()*b.Dy()*ps)
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			p := out[i : i+ps]
			switch f {
			case canvas.FormatGray8:
				p[0] = color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y
			case canvas.FormatRGB565:
				putRGB565(p, color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA))
			case canvas.FormatRGB888:
				c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
				p[0], p[1], p[2] = c.R, c.G, c.B
			case canvas.FormatRGBA8888:
				c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
				p[0], p[1], p[2], p[3] = c.R, c.G, c.B, c.A
			case canvas.FormatBGRA8888:
				c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
				p[0], p[1], p[2], p[3] = c.B, c.G, c.R, c.A
			}
			i += ps
		}
	}
	return out, nil
}

// Pixel returns c as a single pixel record in format f.
func Pixel(c color.Color, f canvas.Format) ([]byte, error) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, c)
	return Bitmap(img, f)
}

// DecodeBitmap decodes a PNG or JPEG image from r and packs it with
// Bitmap. It also returns the image size.
func DecodeBitmap(r io.Reader, f canvas.Format) ([]byte, image.Point, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, image.Point{}, fmt.Errorf("imageio: decode: %w", err)
	}
	bm, err := Bitmap(img, f)
	if err != nil {
		return nil, image.Point{}, err
	}
	return bm, img.Bounds().Size(), nil
}

// LoadBitmap reads an image file and packs it with Bitmap.
func LoadBitmap(path string, f canvas.Format) ([]byte, image.Point, error) {
	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, image.Point{}, fmt.Errorf("imageio: open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return DecodeBitmap(file, f)
}
