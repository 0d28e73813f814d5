package canvas

import (
	"log/slog"

	"github.com/jonathangjertsen/canvas/internal/pixbuf"
)

// Whole-buffer transforms.
//
// Each transform reads every pixel of the primary buffer, writes it to its
// mapped position in the secondary buffer and then swaps the two. The
// primary buffer is never modified in place, because a quarter turn of a
// non-square row-major buffer is not an in-place-safe permutation.
//
// With W×H the dimensions before the call:
//
//	Rotate90CW     (x, y) -> (H-1-y, x)      result H×W
//	Rotate90CCW    (x, y) -> (y, W-1-x)      result H×W
//	Rotate180      (x, y) -> (W-1-x, H-1-y)
//	FlipUpDown     (x, y) -> (x, H-1-y)
//	FlipLeftRight  (x, y) -> (W-1-x, y)
//
// Every call toggles Swapped exactly once.

// Rotate90CW rotates the canvas a quarter turn clockwise. Width and height
// are exchanged.
func (c *Canvas) Rotate90CW() error { return c.transform(pixbuf.Rotate90CW) }

// Rotate90CCW rotates the canvas a quarter turn counter-clockwise. Width
// and height are exchanged.
func (c *Canvas) Rotate90CCW() error { return c.transform(pixbuf.Rotate90CCW) }

// Rotate180 rotates the canvas a half turn.
func (c *Canvas) Rotate180() error { return c.transform(pixbuf.Rotate180) }

// FlipUpDown mirrors the canvas about its horizontal center line.
func (c *Canvas) FlipUpDown() error { return c.transform(pixbuf.FlipUpDown) }

// FlipLeftRight mirrors the canvas about its vertical center line.
func (c *Canvas) FlipLeftRight() error { return c.transform(pixbuf.FlipLeftRight) }

func (c *Canvas) transform(t pixbuf.Transform) error {
	if err := c.checkDouble(); err != nil {
		return err
	}
	t.Apply(c.secondary(), c.Buffer(), c.width, c.height, c.pixelSize)
	c.width, c.height = t.Size(c.width, c.height)
	c.swap()

	Logger().Debug("canvas: transform",
		slog.String("op", t.String()),
		slog.Int("width", c.width),
		slog.Int("height", c.height),
		slog.Bool("swapped", c.Swapped()))
	return nil
}
