// Copyright 2026 The canvas Authors
// SPDX-License-Identifier: MIT

package pixbuf

import (
	"bytes"
	"testing"
)

// ramp returns a w×h buffer whose every record is distinct.
func ramp(w, h, ps int) []byte {
	buf := make([]byte, w*h*ps)
	for i := range buf {
		buf[i] = byte(i*7 + 3)
	}
	return buf
}

func TestExtractPlaceIdentity(t *testing.T) {
	const w, h, ps = 7, 6, 2
	buf := ramp(w, h, ps)
	orig := bytes.Clone(buf)

	tmp := make([]byte, 3*4*ps)
	Extract(buf, tmp, w, ps, 2, 5, 1, 5)
	Place(buf, tmp, w, ps, 2, 5, 1, 5)

	if !bytes.Equal(buf, orig) {
		t.Fatal("extract then place at the same rectangle changed the buffer")
	}
}

func TestExtractPacksRows(t *testing.T) {
	const w = 4
	buf := []byte{
		0, 1, 2, 3,
		4, 5, 6, 7,
		8, 9, 10, 11,
	}
	got := make([]byte, 4)
	Extract(buf, got, w, 1, 1, 3, 1, 3)
	if want := []byte{5, 6, 9, 10}; !bytes.Equal(got, want) {
		t.Fatalf("Extract = %v, want %v", got, want)
	}
}

func TestPlaceWritesOnlyRect(t *testing.T) {
	const w, h = 4, 4
	buf := make([]byte, w*h)
	Place(buf, []byte{1, 2, 3, 4, 5, 6}, w, 1, 1, 4, 2, 4)
	want := []byte{
		0, 0, 0, 0,
		0, 0, 0, 0,
		0, 1, 2, 3,
		0, 4, 5, 6,
	}
	if !bytes.Equal(buf, want) {
		t.Fatalf("Place = %v, want %v", buf, want)
	}
}

func TestCopyRegion(t *testing.T) {
	const w, h = 4, 4
	buf := []byte{
		1, 2, 0, 0,
		3, 4, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
	}
	tmp := make([]byte, 4)
	CopyRegion(buf, tmp, w, 1, 0, 2, 0, 2, 2, 2)
	want := []byte{
		1, 2, 0, 0,
		3, 4, 0, 0,
		0, 0, 1, 2,
		0, 0, 3, 4,
	}
	if !bytes.Equal(buf, want) {
		t.Fatalf("CopyRegion = %v, want %v", buf, want)
	}
}

func TestCopyRegionOverlap(t *testing.T) {
	const w = 5
	buf := []byte{1, 2, 3, 4, 5}
	tmp := make([]byte, 3)
	CopyRegion(buf, tmp, w, 1, 0, 3, 0, 1, 1, 0)
	if want := []byte{1, 1, 2, 3, 5}; !bytes.Equal(buf, want) {
		t.Fatalf("overlapping CopyRegion = %v, want %v", buf, want)
	}
}

func TestCopyRegionSameLocation(t *testing.T) {
	const w, h, ps = 6, 6, 3
	buf := ramp(w, h, ps)
	orig := bytes.Clone(buf)
	tmp := make([]byte, 4*3*ps)
	CopyRegion(buf, tmp, w, ps, 1, 5, 2, 5, 1, 2)
	if !bytes.Equal(buf, orig) {
		t.Fatal("copy to the same location changed the buffer")
	}
}
