package tracer

import (
	"github.com/google/uuid"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/log"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

var logger = log.New("tracer")

// Tracer finds the nearest object along a ray. Bounded objects are looked up
// through the BVH, unbounded ones (planes) are always tested. A Tracer is
// read-only after construction and safe for concurrent use.
type Tracer struct {
	scene       *scene.Scene
	intersector *Intersector
	bvh         *BVH
	unbounded   []*scene.Object
}

// New builds the BVH for the scene and returns a tracer over it
func New(s *scene.Scene) *Tracer {
	bvh := BuildBVH(s.Objects)
	t := &Tracer{
		scene:       s,
		intersector: NewIntersector(s.Camera),
		bvh:         bvh,
		unbounded:   s.UnboundedObjects(),
	}

	stats := bvh.Stats()
	logger.Debugf("BVH: %d nodes, %d leaves, depth %d, %d refs to %d objects; %d unbounded objects",
		stats.Nodes, stats.Leaves, stats.MaxDepth, stats.ObjectRefs, stats.Objects, len(t.unbounded))
	return t
}

// Scene returns the scene being traced
func (t *Tracer) Scene() *scene.Scene {
	return t.scene
}

// BVH returns the tracer's spatial index
func (t *Tracer) BVH() *BVH {
	return t.bvh
}

// Trace returns the nearest hit along the ray. The object with ID ignore is
// skipped; pass uuid.Nil to test every object.
func (t *Tracer) Trace(ray core.Ray, ignore uuid.UUID) (*core.RayHit, bool) {
	skip := t.resolveIgnore(ignore)
	hit := core.Closer(
		t.bvh.Intersect(ray, t.intersector, skip),
		t.intersector.nearest(ray, t.unbounded, skip),
	)
	return hit, hit != nil
}

// TraceLinear is Trace without the BVH: every object is tested
func (t *Tracer) TraceLinear(ray core.Ray, ignore uuid.UUID) (*core.RayHit, bool) {
	hit := t.intersector.nearest(ray, t.scene.Objects, t.resolveIgnore(ignore))
	return hit, hit != nil
}

func (t *Tracer) resolveIgnore(id uuid.UUID) *scene.Object {
	if id == uuid.Nil {
		return nil
	}
	return t.scene.MustObject(id)
}
