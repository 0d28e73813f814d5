// Copyright 2026 The canvas Authors
// SPDX-License-Identifier: MIT

package raster

// RectEdges reports the outline of the half-open rectangle
// [x0, x1) × [y0, y1) as two horizontal and two vertical runs. x1-1 and
// y1-1 are the last columns and rows drawn, and every corner is covered.
//
// hline receives [xa, xb) on row y; vline receives [ya, yb) in column x.
func RectEdges(x0, x1, y0, y1 int, hline func(xa, xb, y int), vline func(x, ya, yb int)) {
	if x1 <= x0 || y1 <= y0 {
		return
	}
	hline(x0, x1, y0)
	hline(x0, x1, y1-1)
	vline(x0, y0, y1)
	vline(x1-1, y0, y1)
}
