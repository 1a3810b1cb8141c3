package integrator

import (
	"math"
	"testing"

	"github.com/google/uuid"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/df07/go-whitted-raytracer/pkg/tracer"
)

const tolerance = 1e-9

func newTracer(objects []*scene.Object, sceneLights []lights.Light) *tracer.Tracer {
	return tracer.New(scene.New(scene.DefaultCamera(), objects, sceneLights, scene.DefaultOptions()))
}

func mustTrace(t *testing.T, tr *tracer.Tracer, ray core.Ray) *core.RayHit {
	t.Helper()
	hit, ok := tr.Trace(ray, uuid.Nil)
	if !ok {
		t.Fatalf("expected ray %v to hit", ray)
	}
	return hit
}

func approxVec(a, b core.Vec3) bool {
	return math.Abs(a.X-b.X) < tolerance && math.Abs(a.Y-b.Y) < tolerance && math.Abs(a.Z-b.Z) < tolerance
}

func TestLightingModel_LitSideBrighterThanShadowSide(t *testing.T) {
	sphere := scene.NewObject(geometry.NewSphere(core.NewVec3(0, 0, -5), 1), scene.DefaultMaterial())
	sun := lights.NewDirectional(core.NewVec3(0, 0, 1), core.NewVec3(1, 1, 1))
	tr := newTracer([]*scene.Object{sphere}, []lights.Light{sun})
	lm := NewLightingModel(tr)

	facing := mustTrace(t, tr, core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)))
	oblique := mustTrace(t, tr, core.NewRay(core.NewVec3(0.7, 0, 0), core.NewVec3(0, 0, -1)))
	back := mustTrace(t, tr, core.NewRay(core.NewVec3(0, 0, -10), core.NewVec3(0, 0, 1)))

	full := lm.Shade(facing)
	if !approxVec(full, core.NewVec3(1, 1, 1)) {
		t.Errorf("surface facing the light should be fully lit, got %v", full)
	}

	partial := lm.Shade(oblique)
	if partial.X <= 0 || partial.X >= full.X {
		t.Errorf("oblique point should be dimmer than the facing point but lit, got %v", partial)
	}

	if dark := lm.Shade(back); dark != (core.Vec3{}) {
		t.Errorf("side facing away from the light should be black, got %v", dark)
	}
}

func TestLightingModel_MaterialScaling(t *testing.T) {
	material := scene.Material{Color: core.NewVec3(1, 0.5, 0), Albedo: 0.5}
	sphere := scene.NewObject(geometry.NewSphere(core.NewVec3(0, 0, -5), 1), material)
	sun := lights.NewDirectional(core.NewVec3(0, 0, 1), core.NewVec3(1, 1, 1))
	tr := newTracer([]*scene.Object{sphere}, []lights.Light{sun})

	hit := mustTrace(t, tr, core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)))
	got := NewLightingModel(tr).Shade(hit)
	want := core.NewVec3(0.5, 0.25, 0)
	if !approxVec(got, want) {
		t.Errorf("Shade = %v, want %v", got, want)
	}
}

func TestLightingModel_PointLightShadows(t *testing.T) {
	floor := scene.NewObject(geometry.NewPlaneFromEquation(0, 1, 0, 0), scene.DefaultMaterial())
	occluder := scene.NewObject(geometry.NewSphere(core.NewVec3(0, 2, 0), 0.5), scene.DefaultMaterial())
	white := core.NewVec3(1, 1, 1)
	down := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	tests := []struct {
		name   string
		lights []lights.Light
		want   float64
	}{
		{
			name:   "occluder between surface and light",
			lights: []lights.Light{lights.NewPoint(core.NewVec3(0, 4, 0), white)},
			want:   0,
		},
		{
			name:   "occluder behind the light",
			lights: []lights.Light{lights.NewPoint(core.NewVec3(0, 1, 0), white)},
			want:   1,
		},
		{
			name:   "unobstructed light at an angle",
			lights: []lights.Light{lights.NewPoint(core.NewVec3(4, 4, 0), white)},
			want:   (4 / math.Sqrt(32)) / 32,
		},
		{
			name: "blocked light does not affect the unobstructed one",
			lights: []lights.Light{
				lights.NewPoint(core.NewVec3(0, 4, 0), white),
				lights.NewPoint(core.NewVec3(4, 4, 0), white),
			},
			want: (4 / math.Sqrt(32)) / 32,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newTracer([]*scene.Object{floor, occluder}, tt.lights)
			hit := mustTrace(t, tr, down)
			if hit.ObjectID != floor.ID {
				t.Fatalf("expected the floor to be hit")
			}
			got := NewLightingModel(tr).Light(hit)
			if math.Abs(got.X-tt.want) > 1e-6 {
				t.Errorf("incident light = %v, want %v", got.X, tt.want)
			}
		})
	}
}

func TestLightingModel_DirectionalShadow(t *testing.T) {
	floor := scene.NewObject(geometry.NewPlaneFromEquation(0, 1, 0, 0), scene.DefaultMaterial())
	occluder := scene.NewObject(geometry.NewSphere(core.NewVec3(0, 100, 0), 0.5), scene.DefaultMaterial())
	sun := lights.NewDirectional(core.NewVec3(0, 1, 0), core.NewVec3(1, 1, 1))
	tr := newTracer([]*scene.Object{floor, occluder}, []lights.Light{sun})
	lm := NewLightingModel(tr)

	shadowed := mustTrace(t, tr, core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0)))
	if got := lm.Light(shadowed); got != (core.Vec3{}) {
		t.Errorf("any occluder along a directional shadow ray blocks it, got %v", got)
	}

	lit := mustTrace(t, tr, core.NewRay(core.NewVec3(5, 1, 0), core.NewVec3(0, -1, 0)))
	if got := lm.Light(lit); !approxVec(got, core.NewVec3(1, 1, 1)) {
		t.Errorf("unoccluded floor should be fully lit, got %v", got)
	}
}
