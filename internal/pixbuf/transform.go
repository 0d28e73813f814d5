// Copyright 2026 The canvas Authors
// SPDX-License-Identifier: MIT

package pixbuf

// Transform is a whole-buffer geometric permutation of pixels.
type Transform uint8

const (
	Rotate90CW Transform = iota
	Rotate90CCW
	Rotate180
	FlipUpDown
	FlipLeftRight
)

// String returns the transform name.
func (t Transform) String() string {
	switch t {
	case Rotate90CW:
		return "rotate_90_cw"
	case Rotate90CCW:
		return "rotate_90_ccw"
	case Rotate180:
		return "rotate_180"
	case FlipUpDown:
		return "flip_up_down"
	case FlipLeftRight:
		return "flip_left_right"
	default:
		return "unknown"
	}
}

// Size returns the dimensions of the result of applying t to a w×h buffer.
// Quarter turns exchange width and height.
func (t Transform) Size(w, h int) (int, int) {
	if t == Rotate90CW || t == Rotate90CCW {
		return h, w
	}
	return w, h
}

// Dest returns where source pixel (x, y) of a w×h buffer lands.
func (t Transform) Dest(x, y, w, h int) (int, int) {
	switch t {
	case Rotate90CW:
		return h - 1 - y, x
	case Rotate90CCW:
		return y, w - 1 - x
	case Rotate180:
		return w - 1 - x, h - 1 - y
	case FlipUpDown:
		return x, h - 1 - y
	case FlipLeftRight:
		return w - 1 - x, y
	default:
		return x, y
	}
}

// Apply writes the transform of src (w×h pixels of pixelSize bytes) into
// dst. Every destination pixel is written exactly once, so dst needs no
// prior initialisation. dst and src must not overlap.
func (t Transform) Apply(dst, src []byte, w, h, pixelSize int) {
	dw, _ := t.Size(w, h)
	ps := pixelSize
	i := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx, dy := t.Dest(x, y, w, h)
			j := (dy*dw + dx) * ps
			copy(dst[j:j+ps], src[i:i+ps])
			i += ps
		}
	}
}
