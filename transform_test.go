package canvas

import (
	"bytes"
	"errors"
	"image"
	"testing"
)

func TestRotate180MovesPixel(t *testing.T) {
	cv := newCanvas(t, 4, 4, 1)
	if err := cv.SetPixel([]byte{0xFF}, 1, 1); err != nil {
		t.Fatal(err)
	}
	if err := cv.Rotate180(); err != nil {
		t.Fatal(err)
	}
	wantPoints(t, lit(cv), image.Pt(2, 2))
	if !cv.Swapped() {
		t.Error("Rotate180 did not swap buffers")
	}
}

func TestRotateLayout(t *testing.T) {
	tests := []struct {
		name         string
		rotate       func(*Canvas) error
		want         string
		wantW, wantH int
	}{
		{"cw", (*Canvas).Rotate90CW, "daebfc", 2, 3},
		{"ccw", (*Canvas).Rotate90CCW, "cfbead", 2, 3},
		{"180", (*Canvas).Rotate180, "fedcba", 3, 2},
		{"flip up down", (*Canvas).FlipUpDown, "defabc", 3, 2},
		{"flip left right", (*Canvas).FlipLeftRight, "cbafed", 3, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// a b c
			// d e f
			cv := newCanvas(t, 3, 2, 1)
			copy(cv.Buffer(), "abcdef")
			if err := tt.rotate(cv); err != nil {
				t.Fatal(err)
			}
			if got := string(cv.Buffer()); got != tt.want {
				t.Errorf("layout = %q, want %q", got, tt.want)
			}
			if cv.Width() != tt.wantW || cv.Height() != tt.wantH {
				t.Errorf("size = %dx%d, want %dx%d", cv.Width(), cv.Height(), tt.wantW, tt.wantH)
			}
			if cv.BufferSize() != 6 {
				t.Errorf("BufferSize() = %d, want 6", cv.BufferSize())
			}
		})
	}
}

func TestTransformIdentities(t *testing.T) {
	tests := []struct {
		name  string
		steps []func(*Canvas) error
	}{
		{"four clockwise turns", []func(*Canvas) error{
			(*Canvas).Rotate90CW, (*Canvas).Rotate90CW, (*Canvas).Rotate90CW, (*Canvas).Rotate90CW,
		}},
		{"clockwise then counter-clockwise", []func(*Canvas) error{
			(*Canvas).Rotate90CW, (*Canvas).Rotate90CCW,
		}},
		{"two half turns", []func(*Canvas) error{
			(*Canvas).Rotate180, (*Canvas).Rotate180,
		}},
		{"flip up down twice", []func(*Canvas) error{
			(*Canvas).FlipUpDown, (*Canvas).FlipUpDown,
		}},
		{"flip left right twice", []func(*Canvas) error{
			(*Canvas).FlipLeftRight, (*Canvas).FlipLeftRight,
		}},
		{"both flips are a half turn", []func(*Canvas) error{
			(*Canvas).FlipUpDown, (*Canvas).FlipLeftRight, (*Canvas).Rotate180,
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cv := newCanvas(t, 5, 3, 2)
			fillRamp(cv)
			before := snapshot(cv)
			for _, step := range tt.steps {
				if err := step(cv); err != nil {
					t.Fatal(err)
				}
			}
			if cv.Width() != 5 || cv.Height() != 3 {
				t.Fatalf("size = %dx%d, want 5x3", cv.Width(), cv.Height())
			}
			if !bytes.Equal(cv.Buffer(), before) {
				t.Fatal("transforms did not compose to the identity")
			}
			if want := len(tt.steps)%2 == 1; cv.Swapped() != want {
				t.Errorf("Swapped() = %v after %d transforms", cv.Swapped(), len(tt.steps))
			}
		})
	}
}

func TestTwoClockwiseTurnsEqualHalfTurn(t *testing.T) {
	a := newCanvas(t, 4, 7, 1)
	b := newCanvas(t, 4, 7, 1)
	fillRamp(a)
	fillRamp(b)
	_ = a.Rotate90CW()
	_ = a.Rotate90CW()
	_ = b.Rotate180()
	if !bytes.Equal(a.Buffer(), b.Buffer()) {
		t.Fatal("two quarter turns differ from a half turn")
	}
}

func TestTransformPreservesPixels(t *testing.T) {
	cv := newCanvas(t, 3, 5, 3)
	fillRamp(cv)
	before := snapshot(cv)
	_ = cv.Rotate90CCW()
	if got := sorted(cv.Buffer(), 3); !bytes.Equal(got, sorted(before, 3)) {
		t.Fatal("rotation lost or duplicated pixels")
	}
}

// sorted returns the pixel records of buf in ascending byte order.
func sorted(buf []byte, ps int) []byte {
	recs := make([][]byte, 0, len(buf)/ps)
	for i := 0; i < len(buf); i += ps {
		recs = append(recs, buf[i:i+ps])
	}
	for i := 1; i < len(recs); i++ {
		for j := i; j > 0 && bytes.Compare(recs[j-1], recs[j]) > 0; j-- {
			recs[j-1], recs[j] = recs[j], recs[j-1]
		}
	}
	return bytes.Join(recs, nil)
}

func TestDrawAfterRotate(t *testing.T) {
	cv := newCanvas(t, 6, 2, 1)
	if err := cv.Rotate90CW(); err != nil {
		t.Fatal(err)
	}
	// The canvas is now 2 wide and 6 tall.
	if err := cv.SetPixel([]byte{1}, 1, 5); err != nil {
		t.Fatalf("SetPixel on rotated canvas = %v", err)
	}
	if err := cv.SetPixel([]byte{1}, 5, 1); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("SetPixel at old extent error = %v, want ErrOutOfBounds", err)
	}
	if cv.Buffer()[11] != 1 {
		t.Fatal("pixel (1,5) not at offset 11 of the rotated buffer")
	}
}
