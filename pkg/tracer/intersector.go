package tracer

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Intersector turns primitive hits into RayHits. Triangles are two-sided: their
// normal is flipped to face against the camera forward direction captured when
// the intersector is built.
type Intersector struct {
	forward core.Vec3
}

// NewIntersector captures the camera's forward direction
func NewIntersector(camera scene.Camera) *Intersector {
	return &Intersector{forward: camera.Forward}
}

// Intersect returns the nearest hit of the ray with the object, if any
func (in *Intersector) Intersect(ray core.Ray, obj *scene.Object) (*core.RayHit, bool) {
	var (
		hit geometry.SurfaceHit
		ok  bool
	)

	switch p := obj.Primitive.(type) {
	case *geometry.Sphere:
		hit, ok = p.Hit(ray)
	case *geometry.Plane:
		hit, ok = p.Hit(ray)
	case *geometry.Triangle:
		hit, ok = p.Hit(ray)
		if ok && hit.Normal.Dot(in.forward) > 0 {
			hit.Normal = hit.Normal.Negate()
		}
	default:
		panic(fmt.Sprintf("tracer: unsupported primitive %T", obj.Primitive))
	}

	if !ok {
		return nil, false
	}

	return &core.RayHit{
		Position:  hit.Point,
		Direction: ray.Direction,
		Distance:  hit.T,
		ObjectID:  obj.ID,
		Normal:    hit.Normal,
		Inside:    hit.Inside,
	}, true
}

// nearest scans objects linearly and returns the closest hit, skipping ignore
func (in *Intersector) nearest(ray core.Ray, objects []*scene.Object, ignore *scene.Object) *core.RayHit {
	var best *core.RayHit
	for _, obj := range objects {
		if obj == ignore {
			continue
		}
		if hit, ok := in.Intersect(ray, obj); ok {
			best = core.Closer(best, hit)
		}
	}
	return best
}
