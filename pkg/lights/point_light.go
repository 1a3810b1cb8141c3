package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Point is an isotropic point light whose contribution falls off with the
// inverse square of the distance.
type Point struct {
	Position core.Vec3
	Color    core.Vec3
}

// NewPoint creates a point light
func NewPoint(position, color core.Vec3) *Point {
	return &Point{
		Position: position,
		Color:    color,
	}
}

func (p *Point) light() {}

// Type returns LightTypePoint
func (p *Point) Type() LightType { return LightTypePoint }

// Intensity returns the light's color
func (p *Point) Intensity() core.Vec3 { return p.Color }

// Towards returns the unit direction from x to the light and the distance to it
func (p *Point) Towards(x core.Vec3) (core.Vec3, float64) {
	offset := p.Position.Subtract(x)
	distance := offset.Length()
	return offset.Normalize(), distance
}
