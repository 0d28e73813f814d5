// Copyright 2026 The canvas Authors
// SPDX-License-Identifier: MIT

package raster

// Circles use the integer algorithm from Stefan Gustavson, "An Efficient
// Circle Drawing Algorithm" (2003). One octant is traced with a running
// decision variable and mirrored into the other seven.

// octants returns the eight reflections of offset (dx, dy) around (cx, cy).
func octants(cx, cy, dx, dy int) [8][2]int {
	return [8][2]int{
		{cx + dx, cy + dy},
		{cx + dx, cy - dy},
		{cx + dy, cy + dx},
		{cx + dy, cy - dx},
		{cx - dx, cy + dy},
		{cx - dx, cy - dy},
		{cx - dy, cy + dx},
		{cx - dy, cy - dx},
	}
}

// diagonal approximates r/√2. The octant loop stops before reaching the
// diagonal, leaving a gap that this offset closes.
func diagonal(r int) int {
	return r * 70 / 99
}

// walkOctant calls visit for each offset of the first octant, followed by
// the diagonal correction.
func walkOctant(r int, visit func(dx, dy int)) {
	x, y := 0, r
	d := 5 - 4*r
	da := 12
	db := 20 - 8*r
	for x < y {
		visit(x, y)
		if d < 0 {
			d += da
			db += 8
		} else {
			y--
			d += db
			db += 16
		}
		x++
		da += 8
	}
	k := diagonal(r)
	visit(k, k)
}

// Circle plots the outline of the circle of radius r centred on (cx, cy).
// Pixels where octants meet are reported more than once.
func Circle(cx, cy, r int, plot Plot) {
	walkOctant(r, func(dx, dy int) {
		for _, p := range octants(cx, cy, dx, dy) {
			plot(p[0], p[1])
		}
	})
}

// FillCircle reports the filled disc of radius r centred on (cx, cy) as
// horizontal spans running from cx to each mirrored octant point. Spans
// overlap; the disc is their union.
func FillCircle(cx, cy, r int, span Span) {
	walkOctant(r, func(dx, dy int) {
		for _, p := range octants(cx, cy, dx, dy) {
			span(min(p[0], cx), max(p[0], cx), p[1])
		}
	})
}
