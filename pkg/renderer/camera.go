package renderer

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// ScreenOffsets maps sample (x, y) of a width x height grid to screen offsets
// through the sample center. The longer side spans [-1, 1]; y grows downwards
// in the grid and upwards on screen.
func ScreenOffsets(x, y, width, height int) (sx, sy float64) {
	w := float64(width)
	h := float64(height)
	scale := max(w, h)
	sx = (2*float64(x) + 1 - w) / scale
	sy = (h - 2*float64(y) - 1) / scale
	return sx, sy
}

// SampleRay returns the camera ray through sample (x, y)
func SampleRay(camera scene.Camera, x, y, width, height int) core.Ray {
	sx, sy := ScreenOffsets(x, y, width, height)
	return camera.PrimaryRay(sx, sy)
}
