package core

import "github.com/google/uuid"

// Ray represents a ray with an origin and direction.
// The direction does not have to be normalized; distances along the
// ray are always expressed in units of the direction's length.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// RayHit describes the nearest intersection found for a ray
type RayHit struct {
	Position  Vec3      // Point of intersection
	Direction Vec3      // Direction of the incoming ray
	Distance  float64   // Parameter t along the ray
	ObjectID  uuid.UUID // Object that was hit
	Normal    Vec3      // Unit surface normal, facing the incoming ray's side
	Inside    bool      // True when the ray started inside a closed primitive
}

// Closer returns whichever of a and b is nearer along the ray. Either may be nil.
func Closer(a, b *RayHit) *RayHit {
	if a == nil {
		return b
	}
	if b == nil || a.Distance <= b.Distance {
		return a
	}
	return b
}
