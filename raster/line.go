// Copyright 2026 The canvas Authors
// SPDX-License-Identifier: MIT

package raster

// Line plots the Bresenham line from (x0, y0) to (x1, y1), both endpoints
// included.
//
// The major axis is the one with the larger absolute delta. Endpoints are
// reordered so iteration runs along increasing major coordinate, which makes
// Line(a, b) and Line(b, a) visit the same pixels.
func Line(x0, y0, x1, y1 int, plot Plot) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)

	if dy < dx {
		if x0 > x1 {
			x0, y0, x1, y1 = x1, y1, x0, y0
		}
		step := 1
		if y1 < y0 {
			step = -1
		}
		e := 2*dy - dx
		y := y0
		for x := x0; x <= x1; x++ {
			plot(x, y)
			if e > 0 {
				y += step
				e += 2 * (dy - dx)
			} else {
				e += 2 * dy
			}
		}
		return
	}

	if y0 > y1 {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}
	step := 1
	if x1 < x0 {
		step = -1
	}
	e := 2*dx - dy
	x := x0
	for y := y0; y <= y1; y++ {
		plot(x, y)
		if e > 0 {
			x += step
			e += 2 * (dx - dy)
		} else {
			e += 2 * dx
		}
	}
}

// LegacyLine reproduces the historical firmware line rasterization,
// including its defects, for callers that need bit-identical output:
//
//   - the end point is excluded;
//   - the error term uses the signed delta, so lines drawn right to left or
//     bottom to top drift away from the ideal line;
//   - the minor step uses the unswapped direction even after the endpoints
//     were swapped;
//   - in the y-major branch, x starts at the reordered start y instead of
//     the start x.
//
// Coordinates that drift below zero are still reported; callers must clip
// or bound-check them.
func LegacyLine(x0, y0, x1, y1 int, plot Plot) {
	xd := x1 - x0
	yd := y1 - y0
	xda := abs(xd)
	yda := abs(yd)

	var xs, xe, ys, ye int
	if yda < xda {
		if x0 > x1 {
			xs, xe, ys, ye = x1, x0, y1, y0
		} else {
			xs, xe, ys, ye = x0, x1, y0, y1
		}
		step := -1
		if yd > 0 {
			step = 1
		}
		e := 2*yda - xd
		y := ys
		for x := xs; x < xe; x++ {
			plot(x, y)
			if e > 0 {
				y += step
				e += 2 * (yda - xd)
			} else {
				e += 2 * yda
			}
		}
		return
	}

	if y0 > y1 {
		ys, ye = y1, y0
	} else {
		ys, ye = y0, y1
	}
	step := -1
	if xd > 0 {
		step = 1
	}
	e := 2*xda - yd
	x := ys
	for y := ys; y < ye; y++ {
		plot(x, y)
		if e > 0 {
			x += step
			e += 2 * (xda - yd)
		} else {
			e += 2 * xda
		}
	}
}
