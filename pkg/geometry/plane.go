package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point  core.Vec3 // A point on the plane
	Normal core.Vec3 // Unit normal; zero for a degenerate plane
}

// NewPlane creates a new plane
func NewPlane(point, normal core.Vec3) *Plane {
	return &Plane{
		Point:  point,
		Normal: normal.Normalize(),
	}
}

// NewPlaneFromEquation creates the plane a*x + b*y + c*z + d = 0.
// A zero (a, b, c) yields a degenerate plane that is never hit.
func NewPlaneFromEquation(a, b, c, d float64) *Plane {
	var point core.Vec3
	switch {
	case a != 0:
		point = core.NewVec3(-d/a, 0, 0)
	case b != 0:
		point = core.NewVec3(0, -d/b, 0)
	case c != 0:
		point = core.NewVec3(0, 0, -d/c)
	}
	return NewPlane(point, core.NewVec3(a, b, c))
}

func (p *Plane) primitive() {}

// IsDegenerate reports whether the plane has no usable normal
func (p *Plane) IsDegenerate() bool {
	return p.Normal.IsZero() || !p.Normal.IsFinite()
}

// Hit tests if a ray intersects with the plane. The normal is reported as
// authored; planes are not flipped towards the viewer.
func (p *Plane) Hit(ray core.Ray) (SurfaceHit, bool) {
	return hitPlane(ray, p.Point, p.Normal)
}

// hitPlane solves t = (point - origin).normal / (direction.normal)
func hitPlane(ray core.Ray, point, normal core.Vec3) (SurfaceHit, bool) {
	denominator := ray.Direction.Dot(normal)

	// Parallel rays, zero directions and zero normals all end up here
	if math.Abs(denominator) < 1e-12 || math.IsNaN(denominator) {
		return SurfaceHit{}, false
	}

	t := point.Subtract(ray.Origin).Dot(normal) / denominator
	if !validParameter(t) {
		return SurfaceHit{}, false
	}

	return SurfaceHit{
		T:      t,
		Point:  ray.At(t),
		Normal: normal,
	}, true
}

// BoundingBox reports that planes are unbounded
func (p *Plane) BoundingBox() (core.AABB, bool) {
	return core.AABB{}, false
}
