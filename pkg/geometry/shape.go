package geometry

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Epsilon is the minimum ray parameter accepted as a hit. Rays re-cast from a
// surface point would otherwise immediately hit the surface they left.
const Epsilon = 1e-4

// maxParameter bounds accepted hits so that overflowed parameters never count
const maxParameter = 1e300

// SurfaceHit contains the geometric part of a ray-primitive intersection
type SurfaceHit struct {
	T      float64   // Parameter t along the ray
	Point  core.Vec3 // Point of intersection
	Normal core.Vec3 // Unit surface normal
	Inside bool      // Whether the ray started inside the primitive
}

// Primitive is the closed set of shapes the tracer understands: *Sphere,
// *Plane and *Triangle. Code that dispatches on primitives switches over
// exactly these types.
type Primitive interface {
	// Hit returns the nearest intersection with t >= Epsilon
	Hit(ray core.Ray) (SurfaceHit, bool)
	// BoundingBox returns the primitive's bounds; ok is false for unbounded primitives
	BoundingBox() (box core.AABB, ok bool)

	primitive()
}

// validParameter also rejects NaN and +Inf
func validParameter(t float64) bool {
	return t >= Epsilon && t < maxParameter
}
