package render

import (
	"context"
	"log/slog"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/echoflaresat/spheretracer/scene"
	"github.com/echoflaresat/spheretracer/vectors"
	"golang.org/x/sync/errgroup"
)

// RenderScene traces one primary ray per pixel and returns the frame.
// Rows are rendered concurrently by up to opts.Workers goroutines; the scene
// and its textures are shared read-only. Cancelling ctx stops the render
// between rows.
func RenderScene(ctx context.Context, sc scene.Scene, opts Options) (*Frame, Stats, error) {
	if err := opts.Validate(); err != nil {
		return nil, Stats{}, err
	}
	workers := opts.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	tracer := NewTracer(sc, opts)
	camera := NewCamera(opts.Width, opts.Height, opts.FOV)
	frame := NewFrame(opts.Width, opts.Height)
	rowStats := make([]Stats, opts.Height)
	progress := newProgress(opts.Height)

	start := time.Now()
	slog.Info("rendering", "width", opts.Width, "height", opts.Height, "spheres", len(sc), "workers", workers)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for y := 0; y < opts.Height; y++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			tracer.renderRow(camera, y, frame.Row(y), &rowStats[y])
			progress.rowDone()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, Stats{}, err
	}

	var stats Stats
	for _, rs := range rowStats {
		stats.Merge(rs)
	}
	slog.Info("render complete", "elapsed", time.Since(start), "rays", stats.Rays, "shadowRays", stats.ShadowRays)
	return frame, stats, nil
}

func (tr *Tracer) renderRow(camera Camera, y int, row []vectors.Vec3, st *Stats) {
	origin := camera.Origin()
	for x := range row {
		row[x] = tr.trace(origin, camera.ComputeRay(x, y), 0, st)
		st.Pixels++
	}
}

// progress logs every 10% of completed rows.
type progress struct {
	total int64
	done  atomic.Int64
}

func newProgress(rows int) *progress {
	return &progress{total: int64(rows)}
}

func (p *progress) rowDone() {
	n := p.done.Add(1)
	if n*10/p.total > (n-1)*10/p.total {
		slog.Info("render progress", "percent", n*100/p.total)
	}
}
