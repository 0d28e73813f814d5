// Copyright 2026 The canvas Authors
// SPDX-License-Identifier: MIT

// Package raster generates the integer pixel coordinates of lines, rectangle
// outlines, circles and triangles.
//
// The rasterizers do not touch memory. They report coordinates through a
// [Plot] or [Span] callback, and the canvas package feeds those into its
// byte-offset addressing. This keeps every algorithm testable as a pure
// coordinate set.
//
// Coordinates are not clipped. Use the *Bounds helpers to compute the
// rectangle a shape touches before drawing it into a bounded buffer.
package raster

import "image"

// Plot receives a single pixel coordinate.
type Plot func(x, y int)

// Span receives a horizontal run of pixels on row y covering the closed
// interval [x0, x1], with x0 <= x1.
type Span func(x0, x1, y int)

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func min3(a, b, c int) int {
	return min(a, b, c)
}

func max3(a, b, c int) int {
	return max(a, b, c)
}

// LineBounds returns the smallest rectangle containing both endpoints.
func LineBounds(x0, y0, x1, y1 int) image.Rectangle {
	return image.Rect(min(x0, x1), min(y0, y1), max(x0, x1)+1, max(y0, y1)+1)
}

// CircleBounds returns the rectangle touched by a circle of radius r
// centred on (cx, cy), for both the outline and the filled disc.
func CircleBounds(cx, cy, r int) image.Rectangle {
	return image.Rect(cx-r, cy-r, cx+r+1, cy+r+1)
}

// TriangleBounds returns the half-open bounding box scanned by
// [FillTriangle]. Pixels on the maximum row and column are never filled.
func TriangleBounds(a, b, c image.Point) image.Rectangle {
	return image.Rectangle{
		Min: image.Pt(min3(a.X, b.X, c.X), min3(a.Y, b.Y, c.Y)),
		Max: image.Pt(max3(a.X, b.X, c.X), max3(a.Y, b.Y, c.Y)),
	}
}
