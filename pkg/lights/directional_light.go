package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Directional is a light at infinity. Direction points from the scene
// towards the light and is kept normalized.
type Directional struct {
	Direction core.Vec3
	Color     core.Vec3
}

// NewDirectional creates a directional light shining from the given direction
func NewDirectional(direction, color core.Vec3) *Directional {
	return &Directional{
		Direction: direction.Normalize(),
		Color:     color,
	}
}

func (d *Directional) light() {}

// Type returns LightTypeDirectional
func (d *Directional) Type() LightType { return LightTypeDirectional }

// Intensity returns the light's color
func (d *Directional) Intensity() core.Vec3 { return d.Color }
