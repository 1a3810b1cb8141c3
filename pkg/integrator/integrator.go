package integrator

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Integrator computes the color carried back along a camera ray
type Integrator interface {
	// CastRay returns the color for the ray at the given recursion depth.
	// ok is false when nothing was hit or the depth limit was exceeded.
	CastRay(ray core.Ray, depth int) (color core.Vec3, ok bool)
}
