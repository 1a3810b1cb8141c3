package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

type LightType string

const (
	LightTypeDirectional LightType = "directional"
	LightTypePoint       LightType = "point"
)

// Light is the closed set of light sources: *Directional and *Point.
// Shading code switches over exactly these types.
type Light interface {
	Type() LightType

	// Intensity returns the light's color
	Intensity() core.Vec3

	light()
}
