package texture

import (
	"errors"
	"image"
	"io"
	"log/slog"

	"github.com/echoflaresat/spheretracer/colors"
	"github.com/echoflaresat/spheretracer/vectors"
	"github.com/echoflaresat/tiff"

	_ "image/jpeg" // register JPEG format with image.Decode
	_ "image/png"  // register PNG format with image.Decode

	_ "golang.org/x/image/bmp" // register BMP format with image.Decode
)

// decodeImage tries TIFF first and then the registered image codecs.
func decodeImage(path string, r io.ReaderAt, size int64) (*Texture, error) {
	sr := io.NewSectionReader(r, 0, size)

	img, tiffErr := tiff.Decode(sr)
	if tiffErr == nil {
		return FromImage(img)
	}

	if _, err := sr.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	img, format, err := image.Decode(sr)
	if err != nil {
		slog.Warn("failed to decode texture", "path", path, "tiff", tiffErr, "image", err)
		if errors.Is(err, image.ErrFormat) {
			return nil, ErrBadMagic
		}
		return nil, err
	}
	slog.Debug("decoded texture", "path", path, "format", format)
	return FromImage(img)
}

// FromImage copies img into a texture.
func FromImage(img image.Image) (*Texture, error) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil, ErrBadHeader
	}

	samples := make([]vectors.Vec3, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			samples[y*width+x] = colors.FromStandardColor(img.At(x+bounds.Min.X, y+bounds.Min.Y))
		}
	}
	return New(width, height, samples)
}
