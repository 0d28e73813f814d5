// Command canvasdemo draws the canvas primitives into a buffer and saves
// the result as PNG.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/image/font/gofont/gomono"

	"github.com/jonathangjertsen/canvas"
	"github.com/jonathangjertsen/canvas/internal/imageio"
	"github.com/jonathangjertsen/canvas/text"
)

var formats = []canvas.Format{
	canvas.FormatGray8,
	canvas.FormatRGB565,
	canvas.FormatRGB888,
	canvas.FormatRGBA8888,
	canvas.FormatBGRA8888,
}

func parseFormat(name string) (canvas.Format, error) {
	for _, f := range formats {
		if strings.EqualFold(f.String(), name) {
			return f, nil
		}
	}
	return canvas.FormatRaw, fmt.Errorf("unknown format %q", name)
}

var transforms = map[string]func(*canvas.Canvas) error{
	"none":   func(*canvas.Canvas) error { return nil },
	"cw":     (*canvas.Canvas).Rotate90CW,
	"ccw":    (*canvas.Canvas).Rotate90CCW,
	"180":    (*canvas.Canvas).Rotate180,
	"flipud": (*canvas.Canvas).FlipUpDown,
	"fliplr": (*canvas.Canvas).FlipLeftRight,
}

func main() {
	var (
		width   = flag.Int("width", 240, "canvas width")
		height  = flag.Int("height", 160, "canvas height")
		output  = flag.String("output", "canvas.png", "output file")
		format  = flag.String("format", "RGB565", "pixel format: Gray8, RGB565, RGB888, RGBA8888, BGRA8888")
		rotate  = flag.String("rotate", "none", "final transform: none, cw, ccw, 180, flipud, fliplr")
		fontArg = flag.String("font", "basic", "text font: basic or gomono")
		bitmap  = flag.String("bitmap", "", "optional PNG or JPEG to place in the bottom-right corner")
		legacy  = flag.Bool("legacy-lines", false, "draw lines with the legacy rasterizer")
		verbose = flag.Bool("v", false, "log canvas events to stderr")
	)
	flag.Parse()

	if *verbose {
		canvas.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	f, err := parseFormat(*format)
	if err != nil {
		log.Fatal(err)
	}
	transform, ok := transforms[*rotate]
	if !ok {
		log.Fatalf("unknown transform %q", *rotate)
	}
	var opts []canvas.Option
	if *legacy {
		opts = append(opts, canvas.WithLegacyLines())
	}

	cv, err := canvas.InitFormat(*width, *height, f, opts...)
	if err != nil {
		log.Fatalf("Failed to init canvas: %v", err)
	}
	if err := cv.SetMemory(make([]byte, cv.AllocSize())); err != nil {
		log.Fatalf("Failed to bind memory: %v", err)
	}

	font, err := loadFont(*fontArg)
	if err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}

	d := &demo{cv: cv, format: f}
	d.shapes()
	d.text(font)
	if *bitmap != "" {
		d.place(*bitmap)
	}
	d.check(transform(cv))

	if d.err != nil {
		log.Fatalf("Failed to draw: %v", d.err)
	}
	if err := imageio.SavePNG(*output, cv); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Demo saved to %s (%dx%d %v)\n", *output, cv.Width(), cv.Height(), f)
}

func loadFont(name string) (*text.Font, error) {
	switch name {
	case "basic":
		return text.Basic(), nil
	case "gomono":
		return text.ParseTTF(gomono.TTF, 14)
	default:
		return nil, fmt.Errorf("unknown font %q", name)
	}
}

// demo draws onto cv and keeps the first error.
type demo struct {
	cv     *canvas.Canvas
	format canvas.Format
	err    error
}

func (d *demo) check(err error) {
	if d.err == nil && err != nil {
		d.err = err
	}
}

func (d *demo) pixel(c color.Color) []byte {
	p, err := imageio.Pixel(c, d.format)
	d.check(err)
	return p
}

func (d *demo) shapes() {
	cv := d.cv
	w, h := cv.Width(), cv.Height()

	d.check(cv.Fill(d.pixel(color.NRGBA{R: 16, G: 24, B: 48, A: 255})))
	d.check(cv.DrawRect(d.pixel(color.White), cv.Bounds()))

	// Bands of horizontal lines.
	for i := 0; i < 8; i++ {
		c := color.NRGBA{R: uint8(32 * i), G: 80, B: uint8(255 - 32*i), A: 255}
		d.check(cv.DrawHLine(d.pixel(c), 2, w/3, h-12+i))
	}

	d.check(cv.FillRect(d.pixel(color.NRGBA{R: 255, G: 200, A: 255}), image.Rect(w/12, h/6, w/3, h/2)))
	d.check(cv.FillCircle(d.pixel(color.NRGBA{R: 255, G: 80, B: 80, A: 255}), image.Pt(w/2, h/3), h/6))
	d.check(cv.DrawCircle(d.pixel(color.White), image.Pt(w/2, h/3), h/6+3))

	// Clockwise on screen.
	d.check(cv.FillTriangle(d.pixel(color.NRGBA{R: 80, G: 220, B: 120, A: 255}),
		image.Pt(3*w/4, h/8), image.Pt(w-w/12, h/2), image.Pt(2*w/3, h/2)))

	// A fan of lines from the bottom-left corner.
	for i := 0; i <= 8; i++ {
		end := image.Pt(w-2, h/2+i*(h/2-2)/8)
		d.check(cv.DrawLine(d.pixel(color.NRGBA{R: 200, G: 200, B: 255, A: 255}), image.Pt(1, h-2), end))
	}

	// Duplicate the filled rectangle's corner a little to the right.
	src := image.Rect(w/12, h/6, w/12+16, h/6+16)
	tmp := make([]byte, src.Dx()*src.Dy()*cv.PixelSize())
	d.check(cv.CopyRegion(tmp, src, image.Pt(w/3+4, h/6)))
}

func (d *demo) text(f *text.Font) {
	fg := d.pixel(color.White)
	bg := d.pixel(color.NRGBA{R: 16, G: 24, B: 48, A: 255})
	_, err := text.DrawString(d.cv, f, fg, bg, "canvas: lines, circles, triangles, blits, rotations", 4, d.cv.Height()/2+4)
	d.check(err)
}

func (d *demo) place(path string) {
	bm, size, err := imageio.LoadBitmap(path, d.format)
	if err != nil {
		d.check(err)
		return
	}
	r := image.Rectangle{Min: d.cv.Bounds().Max.Sub(size), Max: d.cv.Bounds().Max}
	d.check(d.cv.PlaceBitmap(bm, r))
}
