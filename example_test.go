package canvas_test

import (
	"fmt"
	"image"

	"github.com/jonathangjertsen/canvas"
)

func Example() {
	cv, err := canvas.Init(4, 4, 1)
	if err != nil {
		panic(err)
	}
	if err := cv.SetMemory(make([]byte, cv.AllocSize())); err != nil {
		panic(err)
	}

	_ = cv.SetPixel([]byte{0xFF}, 1, 1)
	_ = cv.Rotate180()

	p, _ := cv.PixelAt(2, 2)
	fmt.Printf("%#x swapped=%v\n", p[0], cv.Swapped())
	// Output: 0xff swapped=true
}

func ExampleCanvas_FillRect() {
	cv, _ := canvas.Init(5, 5, 1)
	_ = cv.SetMemory(make([]byte, cv.AllocSize()))
	_ = cv.FillRect([]byte{1}, image.Rect(1, 1, 3, 3))

	buf := cv.Buffer()
	for y := 0; y < cv.Height(); y++ {
		fmt.Println(buf[y*5 : y*5+5])
	}
	// Output:
	// [0 0 0 0 0]
	// [0 1 1 0 0]
	// [0 1 1 0 0]
	// [0 0 0 0 0]
	// [0 0 0 0 0]
}

func ExampleCanvas_Rotate90CW() {
	cv, _ := canvas.Init(3, 2, 1)
	_ = cv.SetMemory(make([]byte, cv.AllocSize()))
	copy(cv.Buffer(), "abcdef")

	_ = cv.Rotate90CW()
	fmt.Printf("%dx%d %s\n", cv.Width(), cv.Height(), cv.Buffer())
	// Output: 2x3 daebfc
}

func ExampleFillTriangleOf() {
	cv, _ := canvas.Init(5, 5, 1, canvas.WithSingleBuffer())
	_ = cv.SetMemory(make([]byte, cv.AllocSize()))

	// Clockwise on screen.
	_ = canvas.FillTriangleOf(cv, uint8('#'), image.Pt(0, 0), image.Pt(4, 0), image.Pt(0, 4))
	for y := 0; y < 5; y++ {
		row := cv.Buffer()[y*5 : y*5+5]
		for i, b := range row {
			if b == 0 {
				row[i] = '.'
			}
		}
		fmt.Println(string(row))
	}
	// Output:
	// .....
	// .##..
	// .#...
	// .....
	// .....
}
