package renderer

import (
	"context"
	"image"
	"time"

	"github.com/pkg/errors"

	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/log"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/df07/go-whitted-raytracer/pkg/tracer"
)

var logger = log.New("renderer")

// Renderer renders a scene into a supersampled sample buffer in parallel tiles
type Renderer struct {
	scene      *scene.Scene
	tracer     *tracer.Tracer
	integrator integrator.Integrator
	config     Config
}

// New validates the options, builds the tracer and returns a renderer for the scene
func New(s *scene.Scene, config Config) (*Renderer, error) {
	config, err := config.validate(s.Options)
	if err != nil {
		return nil, err
	}

	t := tracer.New(s)
	return &Renderer{
		scene:      s,
		tracer:     t,
		integrator: integrator.NewWhitted(t, s.Options.MaxBounces),
		config:     config,
	}, nil
}

// Tracer returns the tracer used by the renderer
func (r *Renderer) Tracer() *tracer.Tracer {
	return r.tracer
}

// Render casts one ray per sample of the supersampled grid. It returns once
// every submitted tile has finished or been skipped. Cancelling ctx stops
// submitting tiles, makes workers abandon queued and running tiles, and makes
// Render return the context error.
func (r *Renderer) Render(ctx context.Context) (*SampleBuffer, RenderStats, error) {
	start := time.Now()
	width := r.scene.Options.SampleWidth()
	height := r.scene.Options.SampleHeight()

	buffer := NewSampleBuffer(width, height)
	tiles := NewTileGrid(width, height, r.config.TileSize)
	pool := NewWorkerPool(r.scene.Camera, r.integrator, r.config.Workers, len(tiles))

	stats := RenderStats{Width: width, Height: height, Workers: make([]WorkerStats, r.config.Workers)}
	for i := range stats.Workers {
		stats.Workers[i].ID = i
	}

	logger.Infof("rendering %dx%d samples in %d tiles using %d workers", width, height, len(tiles), pool.GetNumWorkers())

	pool.Start()
	submitted := 0
	for _, tile := range tiles {
		if ctx.Err() != nil {
			break
		}
		pool.SubmitTask(TileTask{Ctx: ctx, Tile: tile, Buffer: buffer})
		submitted++
	}

	skipped := 0
	for i := 0; i < submitted; i++ {
		result, ok := pool.GetResult()
		if !ok {
			return nil, stats, errors.New("worker pool closed unexpectedly")
		}
		if result.Skipped {
			skipped++
		}
		stats.addTile(result)
	}
	pool.Stop()

	stats.Duration = time.Since(start)
	if submitted < len(tiles) || skipped > 0 {
		err := ctx.Err()
		if err == nil {
			err = context.Canceled
		}
		logger.Warningf("render cancelled: %d of %d tiles completed", submitted-skipped, len(tiles))
		return nil, stats, errors.Wrap(err, "render cancelled")
	}

	logger.Infof("rendered %d samples (%d hits) in %v", stats.Samples, stats.Hits, stats.Duration)
	return buffer, stats, nil
}

// RenderImage renders the scene and assembles the final image
func (r *Renderer) RenderImage(ctx context.Context) (*image.NRGBA, RenderStats, error) {
	buffer, stats, err := r.Render(ctx)
	if err != nil {
		return nil, stats, err
	}
	return Assemble(buffer, r.scene.Options.Supersample, r.scene.Options.Exposure), stats, nil
}
