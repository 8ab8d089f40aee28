package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/echoflaresat/spheretracer/output"
	"github.com/echoflaresat/spheretracer/render"
	"github.com/echoflaresat/spheretracer/scene"
	"github.com/echoflaresat/spheretracer/texture"
	"github.com/echoflaresat/spheretracer/vectors"
)

type config struct {
	width, height, depth, workers *int
	fov, bias, ior                *float64
	background                    *string
	anyChannelLights              *bool
	scenePath, texturePath        *string
	sunTime                       *string
	lat, lon                      *float64
	out                           *string
	showHelp                      *bool
}

func defineFlags() config {
	defaults := render.DefaultOptions()
	return config{
		width:   flag.Int("width", defaults.Width, "Output image width in pixels"),
		height:  flag.Int("height", defaults.Height, "Output image height in pixels"),
		fov:     flag.Float64("fov", defaults.FOV, "Vertical field of view in degrees"),
		depth:   flag.Int("depth", defaults.MaxDepth, "Maximum number of specular bounces"),
		bias:    flag.Float64("bias", defaults.Bias, "Secondary ray offset along the surface normal"),
		ior:     flag.Float64("ior", defaults.IOR, "Index of refraction of transparent spheres"),
		workers: flag.Int("workers", 0, "Rows rendered concurrently (0 = number of CPUs)"),

		background:       flag.String("background", "2,2,2", "Background radiance as r,g,b"),
		anyChannelLights: flag.Bool("any-channel-lights", false, "Treat any emissive sphere as a light, not only red emitters"),

		scenePath:   flag.String("scene", "", "JSON scene file; defaults to the built-in demo scene"),
		texturePath: flag.String("texture", "", "Texture wrapped around the demo scene's middle sphere"),

		sunTime: flag.String("sun", "", "Add a sunlight sphere for this time in RFC3339 format (e.g., 2025-08-02T15:04:05Z)"),
		lat:     flag.Float64("lat", 47.0, "Observer latitude in degrees for -sun"),
		lon:     flag.Float64("lon", 19.0, "Observer longitude in degrees for -sun"),

		out: flag.String("out", "untitled.ppm", "Output file (.ppm, .png, .jpg, .bmp, .tif)"),

		showHelp: flag.Bool("h", false, "Show this help message"),
	}
}

func printHelp() {
	fmt.Fprintf(os.Stderr, `Sphere Tracer - Recursive Ray Tracer

Usage:
  %[1]s [options]

`, os.Args[0])

	printGroup("Camera Options", []string{"width", "height", "fov"})
	printGroup("Rendering Options", []string{"depth", "bias", "ior", "background", "workers", "any-channel-lights"})
	printGroup("Scene", []string{"scene", "texture", "sun", "lat", "lon"})
	printGroup("Output", []string{"out"})
	printGroup("Misc", []string{"h"})
}

func printGroup(title string, keys []string) {
	fmt.Fprintf(os.Stderr, "%s:\n", title)
	for _, name := range keys {
		if f := flag.Lookup(name); f != nil {
			fmt.Fprintf(os.Stderr, "  -%-20s %s (default %q)\n", f.Name, f.Usage, f.DefValue)
		}
	}
	fmt.Fprintln(os.Stderr)
}

func main() {
	cfg := defineFlags()
	flag.Usage = printHelp
	flag.Parse()

	if *cfg.showHelp {
		printHelp()
		return
	}

	opts, err := cfg.options()
	if err != nil {
		log.Fatal(err)
	}

	textures, err := texture.NewCache(8)
	if err != nil {
		log.Fatal(err)
	}
	sc, err := buildScene(cfg, textures)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	frame, stats, err := render.RenderScene(ctx, sc, opts)
	if err != nil {
		log.Fatalf("Render failed: %v", err)
	}

	if err := output.Write(*cfg.out, frame); err != nil {
		log.Fatalf("Failed to write image: %v", err)
	}
	slog.Info("image written", "path", *cfg.out, "pixels", stats.Pixels, "rays", stats.Rays, "maxDepth", stats.MaxDepth)
}

func (cfg config) options() (render.Options, error) {
	background, err := parseVec3(*cfg.background)
	if err != nil {
		return render.Options{}, fmt.Errorf("invalid -background: %w", err)
	}
	opts := render.Options{
		Width:            *cfg.width,
		Height:           *cfg.height,
		FOV:              *cfg.fov,
		MaxDepth:         *cfg.depth,
		Bias:             *cfg.bias,
		IOR:              *cfg.ior,
		Background:       background,
		Workers:          *cfg.workers,
		AnyChannelLights: *cfg.anyChannelLights,
	}
	return opts, opts.Validate()
}

// buildScene returns the scene file's spheres, or the demo scene when no file
// is given. A texture that fails to load leaves the demo sphere untextured.
func buildScene(cfg config, textures *texture.Cache) (scene.Scene, error) {
	var sc scene.Scene
	if *cfg.scenePath != "" {
		var err error
		if sc, err = scene.LoadFile(*cfg.scenePath, textures); err != nil {
			return nil, err
		}
	} else {
		var tex texture.Sampler
		if *cfg.texturePath != "" {
			t, err := textures.Load(*cfg.texturePath)
			if err != nil {
				slog.Warn("texture unavailable, rendering untextured", "error", err)
			} else {
				tex = t
			}
		}
		sc = scene.Default(tex)
	}

	if *cfg.sunTime != "" {
		t := parseTimeOrExit(*cfg.sunTime)
		sun, up := scene.SunLight(t, *cfg.lat, *cfg.lon, 1000, 50, vectors.Splat(3))
		if !up {
			slog.Warn("sun is below the horizon", "time", t, "lat", *cfg.lat, "lon", *cfg.lon)
		}
		sc = append(sc, sun)
	}
	return sc, nil
}

func parseTimeOrExit(timeStr string) time.Time {
	t, err := time.Parse(time.RFC3339, timeStr)
	if err != nil {
		log.Fatalf("Invalid time format: %v", err)
	}
	return t
}

// parseVec3 reads "r,g,b", or a single value applied to all three channels.
func parseVec3(s string) (vectors.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 1 && len(parts) != 3 {
		return vectors.Vec3{}, fmt.Errorf("%q: expected r,g,b", s)
	}
	vals := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return vectors.Vec3{}, err
		}
		vals[i] = v
	}
	if len(vals) == 1 {
		return vectors.Splat(vals[0]), nil
	}
	return vectors.Vec3{X: vals[0], Y: vals[1], Z: vals[2]}, nil
}
