// Copyright 2026 The canvas Authors
// SPDX-License-Identifier: MIT

package raster

import "image"

// Orientation is the winding of three points in image coordinates
// (y grows downward).
type Orientation int8

const (
	// Collinear points enclose no area.
	Collinear Orientation = 0

	// Clockwise is the winding that [FillTriangle] fills. In image
	// coordinates (0,0), (4,0), (0,4) is clockwise on screen.
	Clockwise Orientation = 1

	// CounterClockwise triangles rasterize as empty.
	CounterClockwise Orientation = -1
)

// String returns a readable orientation name.
func (o Orientation) String() string {
	switch o {
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counter-clockwise"
	default:
		return "collinear"
	}
}

// edge evaluates the signed parallelogram area spanned by the directed edge
// a→b and the point c. The result is negative when c lies on the side of
// the edge that is inside a clockwise triangle.
func edge(ax, ay, bx, by, cx, cy int) int {
	return (cx-ax)*(by-ay) - (cy-ay)*(bx-ax)
}

// Winding reports the orientation of the triangle a, b, c.
func Winding(a, b, c image.Point) Orientation {
	e := edge(a.X, a.Y, b.X, b.Y, c.X, c.Y)
	switch {
	case e < 0:
		return Clockwise
	case e > 0:
		return CounterClockwise
	default:
		return Collinear
	}
}

// FillTriangle plots every pixel of the bounding box [min, max) that lies
// strictly inside the triangle a, b, c.
//
// A pixel is inside when all three edge functions a→b, b→c and c→a are
// negative, so only [Clockwise] triangles produce output. Points exactly on
// an edge are not filled. Use [Winding] to detect the orientation of
// caller-supplied vertices.
func FillTriangle(a, b, c image.Point, plot Plot) {
	r := TriangleBounds(a, b, c)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if edge(a.X, a.Y, b.X, b.Y, x, y) < 0 &&
				edge(b.X, b.Y, c.X, c.Y, x, y) < 0 &&
				edge(c.X, c.Y, a.X, a.Y, x, y) < 0 {
				plot(x, y)
			}
		}
	}
}
