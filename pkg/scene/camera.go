package scene

import (
	"github.com/pkg/errors"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

var ErrForwardUnsupported = errors.New("scene: changing the camera forward vector is not supported")

// Camera holds the eye position and basis vectors. The basis is assumed to be
// orthonormal; Right is re-derived whenever Up changes.
type Camera struct {
	Position core.Vec3
	Forward  core.Vec3
	Right    core.Vec3
	Up       core.Vec3
}

// DefaultCamera looks down -Z from the origin with +Y up
func DefaultCamera() Camera {
	return Camera{
		Position: core.NewVec3(0, 0, 0),
		Forward:  core.NewVec3(0, 0, -1),
		Right:    core.NewVec3(1, 0, 0),
		Up:       core.NewVec3(0, 1, 0),
	}
}

// SetUp replaces the up vector and recomputes Right = Forward x Up
func (c *Camera) SetUp(up core.Vec3) {
	c.Up = up
	c.Right = c.Forward.Cross(up)
}

// SetForward always fails: re-deriving the basis from a new forward vector is
// not defined for this camera model.
func (c *Camera) SetForward(core.Vec3) error {
	return ErrForwardUnsupported
}

// PrimaryRay builds the ray through screen offsets (sx, sy) in [-1,1]
func (c *Camera) PrimaryRay(sx, sy float64) core.Ray {
	direction := c.Forward.
		Add(c.Right.Multiply(sx)).
		Add(c.Up.Multiply(sy)).
		Normalize()
	return core.NewRay(c.Position, direction)
}
