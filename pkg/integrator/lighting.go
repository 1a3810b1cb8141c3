package integrator

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/tracer"
)

// LightingModel computes direct Lambertian lighting with hard shadows
type LightingModel struct {
	tracer *tracer.Tracer
}

// NewLightingModel creates a lighting model that casts shadow rays through t
func NewLightingModel(t *tracer.Tracer) *LightingModel {
	return &LightingModel{tracer: t}
}

// Light returns the light arriving at the hit point from every light in the scene
func (lm *LightingModel) Light(hit *core.RayHit) core.Vec3 {
	var incident core.Vec3
	for _, light := range lm.tracer.Scene().Lights {
		incident = incident.Add(lm.contribution(light, hit))
	}
	return incident
}

// Shade combines the incident light with the surface material
func (lm *LightingModel) Shade(hit *core.RayHit) core.Vec3 {
	material := lm.tracer.Scene().MustObject(hit.ObjectID).Material
	incident := lm.Light(hit)
	return material.Color.MultiplyVec(incident.Multiply(material.Albedo))
}

func (lm *LightingModel) contribution(light lights.Light, hit *core.RayHit) core.Vec3 {
	switch l := light.(type) {
	case *lights.Directional:
		shadow := core.NewRay(hit.Position, l.Direction)
		if _, blocked := lm.tracer.Trace(shadow, hit.ObjectID); blocked {
			return core.Vec3{}
		}
		return l.Color.Multiply(lambert(l.Direction, hit.Normal))

	case *lights.Point:
		direction, distance := l.Towards(hit.Position)
		if distance == 0 {
			return core.Vec3{}
		}
		shadow := core.NewRay(hit.Position, direction)
		if occluder, blocked := lm.tracer.Trace(shadow, hit.ObjectID); blocked && occluder.Distance < distance {
			return core.Vec3{}
		}
		return l.Color.Multiply(lambert(direction, hit.Normal) / (distance * distance))

	default:
		panic(fmt.Sprintf("integrator: unsupported light %T", light))
	}
}

// lambert is the clamped cosine between a unit light direction and a unit normal
func lambert(direction, normal core.Vec3) float64 {
	return math.Max(0, direction.Dot(normal))
}
