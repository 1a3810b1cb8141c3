package integrator

import (
	"github.com/google/uuid"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/tracer"
)

// Whitted shades hits locally and follows mirror reflections recursively
type Whitted struct {
	tracer     *tracer.Tracer
	lighting   *LightingModel
	maxBounces int
}

// NewWhitted creates a Whitted integrator that stops recursing past maxBounces
func NewWhitted(t *tracer.Tracer, maxBounces int) *Whitted {
	return &Whitted{
		tracer:     t,
		lighting:   NewLightingModel(t),
		maxBounces: maxBounces,
	}
}

// CastRay traces the ray and returns the shaded color of the nearest hit.
// Shininess s blends local shading and the reflected color as (1-s)*local + s*reflected.
func (w *Whitted) CastRay(ray core.Ray, depth int) (core.Vec3, bool) {
	hit, ok := w.trace(ray, uuid.Nil, depth)
	if !ok {
		return core.Vec3{}, false
	}
	return w.shade(hit, depth), true
}

// Trace exposes the nearest hit for a camera ray without shading it
func (w *Whitted) Trace(ray core.Ray) (*core.RayHit, bool) {
	return w.tracer.Trace(ray, uuid.Nil)
}

func (w *Whitted) trace(ray core.Ray, ignore uuid.UUID, depth int) (*core.RayHit, bool) {
	if depth > w.maxBounces {
		return nil, false
	}
	return w.tracer.Trace(ray, ignore)
}

func (w *Whitted) shade(hit *core.RayHit, depth int) core.Vec3 {
	shininess := w.tracer.Scene().MustObject(hit.ObjectID).Material.Shininess

	switch {
	case shininess == 0:
		return w.lighting.Shade(hit)
	case shininess == 1:
		return w.reflect(hit, depth)
	default:
		local := w.lighting.Shade(hit).Multiply(1 - shininess)
		reflected := w.reflect(hit, depth).Multiply(shininess)
		return local.Add(reflected)
	}
}

// reflect follows the mirror direction; a reflection that hits nothing is black
func (w *Whitted) reflect(hit *core.RayHit, depth int) core.Vec3 {
	ray := core.NewRay(hit.Position, hit.Direction.Reflect(hit.Normal).Normalize())

	ignore := hit.ObjectID
	if hit.Inside {
		ignore = uuid.Nil
	}

	next, ok := w.trace(ray, ignore, depth+1)
	if !ok {
		return core.Vec3{}
	}
	return w.shade(next, depth+1)
}
