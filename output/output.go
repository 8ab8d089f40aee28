package output

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/echoflaresat/spheretracer/colors"
	"github.com/echoflaresat/spheretracer/vectors"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

var ErrUnsupportedFormat = errors.New("unsupported output format")

// Raster is a grid of radiance values, such as a rendered frame or a texture.
type Raster interface {
	Size() (width, height int)
	At(x, y int) vectors.Vec3
}

// Image converts r to 8-bit color, clamping each channel to [0,1].
func Image(r Raster) *image.NRGBA {
	w, h := r.Size()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, colors.ToNRGBA(r.At(x, y)))
		}
	}
	return img
}

// WritePPM writes r as a binary P6 image with maxval 255.
func WritePPM(w io.Writer, r Raster) error {
	width, height := r.Size()
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", width, height); err != nil {
		return err
	}

	px := make([]byte, 3)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := r.At(x, y)
			px[0], px[1], px[2] = colors.To8bit(v.X), colors.To8bit(v.Y), colors.To8bit(v.Z)
			if _, err := bw.Write(px); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// Supported reports whether Encode handles ext.
func Supported(ext string) bool {
	switch strings.ToLower(ext) {
	case ".ppm", ".png", ".jpg", ".jpeg", ".bmp", ".tif", ".tiff":
		return true
	}
	return false
}

// Encode writes r to w in the format named by ext (".ppm", ".png", ...).
func Encode(w io.Writer, ext string, r Raster) error {
	switch strings.ToLower(ext) {
	case ".ppm":
		return WritePPM(w, r)
	case ".png":
		return (&png.Encoder{CompressionLevel: png.BestSpeed}).Encode(w, Image(r))
	case ".jpg", ".jpeg":
		return jpeg.Encode(w, Image(r), &jpeg.Options{Quality: 95})
	case ".bmp":
		return bmp.Encode(w, Image(r))
	case ".tif", ".tiff":
		return tiff.Encode(w, Image(r), &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// Write saves r to path, choosing the encoder from the file extension.
// A partially written file is removed on failure.
func Write(path string, r Raster) error {
	ext := filepath.Ext(path)
	if !Supported(ext) {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Encode(f, ext, r); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
