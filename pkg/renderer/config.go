package renderer

import (
	"runtime"

	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/cpu"

	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

var ErrInvalidOptions = errors.New("renderer: invalid options")

// Config contains the execution settings of a render. They affect speed only,
// never the rendered image.
type Config struct {
	TileSize int // Edge length of square tiles in samples
	Workers  int // Number of parallel workers (0 = logical CPU count)
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		TileSize: 32,
		Workers:  0,
	}
}

// defaultWorkers returns the logical CPU count
func defaultWorkers() int {
	if n, err := cpu.Counts(true); err == nil && n > 0 {
		return n
	}
	return runtime.NumCPU()
}

// validate checks the scene options and resolves the worker count
func (c Config) validate(options scene.Options) (Config, error) {
	switch {
	case options.Width <= 0 || options.Height <= 0:
		return c, errors.Wrapf(ErrInvalidOptions, "image size %dx%d", options.Width, options.Height)
	case options.Supersample < 1:
		return c, errors.Wrapf(ErrInvalidOptions, "supersample %d", options.Supersample)
	case options.MaxBounces < 0:
		return c, errors.Wrapf(ErrInvalidOptions, "max bounces %d", options.MaxBounces)
	case c.TileSize <= 0:
		return c, errors.Wrapf(ErrInvalidOptions, "tile size %d", c.TileSize)
	case c.Workers < 0:
		return c, errors.Wrapf(ErrInvalidOptions, "workers %d", c.Workers)
	}

	if c.Workers == 0 {
		c.Workers = defaultWorkers()
	}
	return c, nil
}
