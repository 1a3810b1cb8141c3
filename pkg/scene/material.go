package scene

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Material describes how a surface is shaded. Colors are linear and in [0,1].
type Material struct {
	Color     core.Vec3 // Diffuse color
	Albedo    float64   // Diffuse reflectance multiplier
	Shininess float64   // Mirror mix: 0 = diffuse, 1 = perfect mirror
}

// DefaultMaterial is white, fully diffuse, with unit albedo
func DefaultMaterial() Material {
	return Material{
		Color:     core.NewVec3(1, 1, 1),
		Albedo:    1,
		Shininess: 0,
	}
}
