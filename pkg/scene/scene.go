package scene

import (
	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// Scene contains all the elements needed for rendering. It is built once and
// treated as read-only afterwards.
type Scene struct {
	Camera  Camera
	Objects []*Object
	Lights  []lights.Light
	Options Options

	byID map[uuid.UUID]*Object
}

// New creates a scene and indexes its objects by ID
func New(camera Camera, objects []*Object, sceneLights []lights.Light, options Options) *Scene {
	s := &Scene{
		Camera:  camera,
		Objects: objects,
		Lights:  sceneLights,
		Options: options,
	}
	s.byID = lo.SliceToMap(objects, func(o *Object) (uuid.UUID, *Object) {
		return o.ID, o
	})
	return s
}

// Object returns the object with the given ID
func (s *Scene) Object(id uuid.UUID) (*Object, bool) {
	obj, ok := s.byID[id]
	return obj, ok
}

// MustObject returns the object with the given ID. Every hit reported by the
// tracer refers to an object of this scene, so a miss is a programming error.
func (s *Scene) MustObject(id uuid.UUID) *Object {
	obj, ok := s.byID[id]
	if !ok {
		panic("scene: hit refers to unknown object " + id.String())
	}
	return obj
}

// BoundedObjects returns the objects that have a bounding box
func (s *Scene) BoundedObjects() []*Object {
	return lo.Filter(s.Objects, func(o *Object, _ int) bool { return o.IsBounded() })
}

// UnboundedObjects returns the objects without a bounding box (planes)
func (s *Scene) UnboundedObjects() []*Object {
	return lo.Filter(s.Objects, func(o *Object, _ int) bool { return !o.IsBounded() })
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Objects)
}
