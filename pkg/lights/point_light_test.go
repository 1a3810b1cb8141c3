package lights

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestPoint_Towards(t *testing.T) {
	light := NewPoint(core.NewVec3(0, 4, 0), core.NewVec3(1, 1, 1))

	tests := []struct {
		name              string
		from              core.Vec3
		expectedDirection core.Vec3
		expectedDistance  float64
	}{
		{"straight below", core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 4},
		{"diagonal", core.NewVec3(3, 0, 0), core.NewVec3(-0.6, 0.8, 0), 5},
		{"above", core.NewVec3(0, 6, 0), core.NewVec3(0, -1, 0), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			direction, distance := light.Towards(tt.from)
			if direction.Subtract(tt.expectedDirection).Length() > 1e-9 {
				t.Errorf("Expected direction %v, got %v", tt.expectedDirection, direction)
			}
			if math.Abs(distance-tt.expectedDistance) > 1e-9 {
				t.Errorf("Expected distance %f, got %f", tt.expectedDistance, distance)
			}
		})
	}
}

func TestDirectional_NormalizesDirection(t *testing.T) {
	light := NewDirectional(core.NewVec3(0, 0, 5), core.NewVec3(0.5, 0.5, 0.5))

	if math.Abs(light.Direction.Length()-1) > 1e-12 {
		t.Errorf("Expected unit direction, got length %f", light.Direction.Length())
	}
	if light.Type() != LightTypeDirectional {
		t.Errorf("Expected directional type, got %s", light.Type())
	}
	if light.Intensity() != core.NewVec3(0.5, 0.5, 0.5) {
		t.Errorf("Unexpected intensity %v", light.Intensity())
	}
}
