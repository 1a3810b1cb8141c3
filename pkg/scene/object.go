package scene

import (
	"github.com/google/uuid"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

// Object is a primitive placed in the scene with its material. Box is the
// precomputed bounding box and is nil for unbounded primitives (planes).
type Object struct {
	ID        uuid.UUID
	Primitive geometry.Primitive
	Material  Material
	Box       *core.AABB
}

// NewObject wraps a primitive with a fresh identifier and its bounding box
func NewObject(primitive geometry.Primitive, material Material) *Object {
	obj := &Object{
		ID:        uuid.New(),
		Primitive: primitive,
		Material:  material,
	}
	if box, ok := primitive.BoundingBox(); ok {
		obj.Box = &box
	}
	return obj
}

// IsBounded reports whether the object has a finite bounding box
func (o *Object) IsBounded() bool {
	return o.Box != nil
}
