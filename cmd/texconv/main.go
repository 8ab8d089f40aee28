// Command texconv converts textures between formats and stitches tiled
// textures into one image, so photographs can be wrapped around spheres.
//
// Usage:
//
//	texconv <cols>x<rows> <output> <tile1> <tile2> ...
//	texconv <output> <input>
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/echoflaresat/spheretracer/output"
	"github.com/echoflaresat/spheretracer/texture"
	"github.com/echoflaresat/spheretracer/vectors"
)

func main() {
	args := os.Args[1:]
	cols, rows := 1, 1
	if len(args) > 0 && strings.Contains(args[0], "x") && !output.Supported(filepath.Ext(args[0])) {
		var err error
		if cols, rows, err = parseLayout(args[0]); err != nil {
			log.Fatal(err)
		}
		args = args[1:]
	}
	if len(args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s [<cols>x<rows>] <output> <tile1> <tile2> ...\n", os.Args[0])
		os.Exit(1)
	}

	out := args[0]
	inputFiles := args[1:]
	if len(inputFiles) != cols*rows {
		log.Fatalf("Expected %d input files, got %d", cols*rows, len(inputFiles))
	}

	tiles := make([]*texture.Texture, len(inputFiles))
	for i, path := range inputFiles {
		fmt.Printf("Processing %s\n", path)
		tex, err := texture.Load(path)
		if err != nil {
			log.Fatalf("Could not load input file: %v", err)
		}
		tiles[i] = tex
	}

	merged, err := merge(cols, rows, tiles)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("-> creating %s\n", out)
	if err := output.Write(out, merged); err != nil {
		log.Fatal(err)
	}
}

func parseLayout(s string) (cols, rows int, err error) {
	parts := strings.Split(s, "x")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid tile format: %s (expected NxM)", s)
	}
	if cols, err = strconv.Atoi(parts[0]); err != nil || cols <= 0 {
		return 0, 0, fmt.Errorf("invalid cols: %q", parts[0])
	}
	if rows, err = strconv.Atoi(parts[1]); err != nil || rows <= 0 {
		return 0, 0, fmt.Errorf("invalid rows: %q", parts[1])
	}
	return cols, rows, nil
}

// merge lays the tiles out row by row into one texture. All tiles must
// share the size of the first.
func merge(cols, rows int, tiles []*texture.Texture) (*texture.Texture, error) {
	if len(tiles) == 1 {
		return tiles[0], nil
	}
	tileW, tileH := tiles[0].Size()
	width, height := cols*tileW, rows*tileH
	samples := make([]vectors.Vec3, width*height)

	for idx, tile := range tiles {
		if w, h := tile.Size(); w != tileW || h != tileH {
			return nil, fmt.Errorf("tile %d size mismatch: expected %dx%d, got %dx%d", idx, tileW, tileH, w, h)
		}
		x0 := (idx % cols) * tileW
		y0 := (idx / cols) * tileH
		for y := 0; y < tileH; y++ {
			for x := 0; x < tileW; x++ {
				samples[(y0+y)*width+x0+x] = tile.At(x, y)
			}
		}
	}
	return texture.New(width, height, samples)
}
