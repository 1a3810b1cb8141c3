package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Triangle represents a single triangle defined by three vertices. The face
// normal and the two edge-function vectors are derived once by NewTriangle.
type Triangle struct {
	V0, V1, V2 core.Vec3 // The three vertices, in authored order
	normal     core.Vec3 // Cached face normal
	e1, e2     core.Vec3 // Edge functions yielding the barycentric weights of V1 and V2
	degenerate bool
	bbox       core.AABB // Cached bounding box
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(v0, v1, v2 core.Vec3) *Triangle {
	t := &Triangle{
		V0: v0,
		V1: v1,
		V2: v2,
	}

	t.computeEdgeFunctions()
	t.bbox = core.NewAABBFromPoints(v0, v1, v2)

	return t
}

// computeEdgeFunctions caches the face normal and the vectors e1, e2 with
// e1.(V1-V0) = 1, e1.(V2-V0) = 0 and e2.(V2-V0) = 1, e2.(V1-V0) = 0.
func (t *Triangle) computeEdgeFunctions() {
	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	t.normal = edge1.Cross(t.V2.Subtract(t.V1)).Normalize()

	a1 := edge2.Cross(t.normal)
	a2 := edge1.Cross(t.normal)
	d1 := a1.Dot(edge1)
	d2 := a2.Dot(edge2)

	// Zero-area triangles have no normal and no edge functions
	if t.normal.IsZero() || d1 == 0 || d2 == 0 {
		t.degenerate = true
		return
	}

	t.e1 = a1.Multiply(1.0 / d1)
	t.e2 = a2.Multiply(1.0 / d2)
	t.degenerate = !t.e1.IsFinite() || !t.e2.IsFinite()
}

func (t *Triangle) primitive() {}

// Hit intersects the supporting plane through V0 and keeps the hit when all
// three barycentric weights are strictly positive. The normal is the authored
// face normal; callers decide which way it faces.
func (t *Triangle) Hit(ray core.Ray) (SurfaceHit, bool) {
	if t.degenerate {
		return SurfaceHit{}, false
	}

	hit, ok := hitPlane(ray, t.V0, t.normal)
	if !ok {
		return SurfaceHit{}, false
	}

	rel := hit.Point.Subtract(t.V0)
	b1 := t.e1.Dot(rel)
	b2 := t.e2.Dot(rel)
	b0 := 1.0 - b1 - b2
	if b0 <= 0 || b1 <= 0 || b2 <= 0 {
		return SurfaceHit{}, false
	}

	return hit, true
}

// BoundingBox returns the axis-aligned bounding box for this triangle
func (t *Triangle) BoundingBox() (core.AABB, bool) {
	return t.bbox, true
}

// Normal returns the triangle's authored face normal
func (t *Triangle) Normal() core.Vec3 {
	return t.normal
}

// IsDegenerate reports whether the triangle has zero area
func (t *Triangle) IsDegenerate() bool {
	return t.degenerate
}
