// Copyright 2026 The canvas Authors
// SPDX-License-Identifier: MIT

package pixbuf

import (
	"bytes"
	"testing"
)

func TestOffset(t *testing.T) {
	tests := []struct {
		width, ps, x, y int
		want            int
	}{
		{4, 1, 0, 0, 0},
		{4, 1, 3, 0, 3},
		{4, 1, 0, 1, 4},
		{4, 2, 1, 1, 10},
		{10, 3, 9, 9, 297},
	}
	for _, tt := range tests {
		if got := Offset(tt.width, tt.ps, tt.x, tt.y); got != tt.want {
			t.Errorf("Offset(%d, %d, %d, %d) = %d, want %d", tt.width, tt.ps, tt.x, tt.y, got, tt.want)
		}
	}
}

func TestSetPixelAndPixel(t *testing.T) {
	const w, h, ps = 5, 4, 3
	buf := make([]byte, w*h*ps)
	px := []byte{0xAA, 0xBB, 0xCC}

	SetPixel(buf, px, w, 2, 3)

	if got := Pixel(buf, ps, w, 2, 3); !bytes.Equal(got, px) {
		t.Fatalf("Pixel(2,3) = %x, want %x", got, px)
	}
	// Only the three addressed bytes may change.
	for i, b := range buf {
		if i >= 51 && i < 54 {
			continue
		}
		if b != 0 {
			t.Fatalf("byte %d = %#x, want 0", i, b)
		}
	}
}

func TestPixelCapacityIsClamped(t *testing.T) {
	buf := make([]byte, 8)
	p := Pixel(buf, 2, 2, 0, 0)
	p = append(p, 0xFF)
	if buf[2] != 0 {
		t.Fatal("append to Pixel result wrote into the buffer")
	}
	_ = p
}

func TestFill(t *testing.T) {
	sizes := []int{1, 2, 3, 4}
	for _, ps := range sizes {
		px := make([]byte, ps)
		for i := range px {
			px[i] = byte(0x10 + i)
		}
		buf := make([]byte, 7*5*ps)
		Fill(buf, px)
		for i := 0; i < len(buf); i += ps {
			if !bytes.Equal(buf[i:i+ps], px) {
				t.Fatalf("ps=%d: record at %d = %x, want %x", ps, i, buf[i:i+ps], px)
			}
		}
	}
}

func TestFillEmpty(t *testing.T) {
	Fill(nil, []byte{1})
	Fill(make([]byte, 4), nil)
}

func TestHLineVLine(t *testing.T) {
	const w, h = 6, 5
	buf := make([]byte, w*h)
	HLine(buf, []byte{1}, w, 1, 4, 2)
	VLine(buf, []byte{2}, w, 5, 0, 3)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var want byte
			switch {
			case x == 5 && y < 3:
				want = 2
			case y == 2 && x >= 1 && x < 4:
				want = 1
			}
			if got := buf[y*w+x]; got != want {
				t.Errorf("(%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestSpanEitherOrder(t *testing.T) {
	const w = 8
	a := make([]byte, w)
	b := make([]byte, w)
	Span(a, []byte{9}, w, 2, 5, 0)
	Span(b, []byte{9}, w, 5, 2, 0)
	if !bytes.Equal(a, b) {
		t.Fatalf("Span order dependent: %v vs %v", a, b)
	}
	want := []byte{0, 0, 9, 9, 9, 9, 0, 0}
	if !bytes.Equal(a, want) {
		t.Fatalf("Span = %v, want %v", a, want)
	}
}

func TestFillRect(t *testing.T) {
	const w, h = 5, 5
	buf := make([]byte, w*h)
	FillRect(buf, []byte{0xFF}, w, 1, 3, 1, 3)

	count := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			inside := x >= 1 && x < 3 && y >= 1 && y < 3
			v := buf[y*w+x]
			if inside && v != 0xFF {
				t.Errorf("(%d,%d) not filled", x, y)
			}
			if !inside && v != 0 {
				t.Errorf("(%d,%d) filled outside rect", x, y)
			}
			if v == 0xFF {
				count++
			}
		}
	}
	if count != 4 {
		t.Errorf("filled %d pixels, want 4", count)
	}
}

func TestFillRectEmpty(t *testing.T) {
	buf := make([]byte, 9)
	FillRect(buf, []byte{1}, 3, 2, 2, 0, 3)
	FillRect(buf, []byte{1}, 3, 0, 3, 1, 1)
	for _, b := range buf {
		if b != 0 {
			t.Fatal("empty rectangle wrote pixels")
		}
	}
}

func TestFillRectMultiBytePixel(t *testing.T) {
	const w, h, ps = 4, 3, 2
	buf := make([]byte, w*h*ps)
	px := []byte{0x12, 0x34}
	FillRect(buf, px, w, 0, 4, 2, 3)
	for x := 0; x < w; x++ {
		if !bytes.Equal(Pixel(buf, ps, w, x, 2), px) {
			t.Errorf("(%d,2) not filled", x)
		}
		if !bytes.Equal(Pixel(buf, ps, w, x, 1), []byte{0, 0}) {
			t.Errorf("(%d,1) filled", x)
		}
	}
}
