package render

import "github.com/echoflaresat/spheretracer/vectors"

// Frame is the rendered pixel buffer: row-major radiance, top row first.
// Values are unclamped.
type Frame struct {
	Width, Height int
	Pixels        []vectors.Vec3
}

func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Pixels: make([]vectors.Vec3, width*height),
	}
}

func (f *Frame) Size() (width, height int) {
	return f.Width, f.Height
}

func (f *Frame) At(x, y int) vectors.Vec3 {
	return f.Pixels[y*f.Width+x]
}

func (f *Frame) Set(x, y int, v vectors.Vec3) {
	f.Pixels[y*f.Width+x] = v
}

// Row returns the pixels of row y. Rows never overlap, so distinct rows
// can be written from different goroutines.
func (f *Frame) Row(y int) []vectors.Vec3 {
	return f.Pixels[y*f.Width : (y+1)*f.Width]
}
