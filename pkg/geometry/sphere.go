package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64) *Sphere {
	return &Sphere{
		Center: center,
		Radius: radius,
	}
}

func (s *Sphere) primitive() {}

// Hit intersects the ray with the sphere by projecting the center onto the ray.
// A ray starting inside the sphere reports the exit point with an inward normal.
func (s *Sphere) Hit(ray core.Ray) (SurfaceHit, bool) {
	a := ray.Direction.LengthSquared()
	if a == 0 || s.Radius <= 0 || !ray.Direction.IsFinite() {
		return SurfaceHit{}, false
	}

	r2 := s.Radius * s.Radius
	toCenter := s.Center.Subtract(ray.Origin)
	inside := toCenter.LengthSquared() < r2

	// Parameter of closest approach to the center
	tc := toCenter.Dot(ray.Direction) / a
	if !inside && tc < 0 {
		return SurfaceHit{}, false
	}

	d2 := ray.At(tc).Subtract(s.Center).LengthSquared()
	if !inside && d2 > r2 {
		return SurfaceHit{}, false
	}

	offset := math.Sqrt(math.Max(0, r2-d2) / a)
	root := tc - offset
	if inside {
		root = tc + offset
	} else if root < Epsilon {
		// Origin sits on the surface heading inwards
		root = tc + offset
		inside = true
	}

	if !validParameter(root) {
		return SurfaceHit{}, false
	}

	point := ray.At(root)
	normal := point.Subtract(s.Center).Multiply(1.0 / s.Radius)
	if inside {
		normal = normal.Negate()
	}

	return SurfaceHit{T: root, Point: point, Normal: normal, Inside: inside}, true
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox() (core.AABB, bool) {
	radius := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(
		s.Center.Subtract(radius),
		s.Center.Add(radius),
	), true
}
