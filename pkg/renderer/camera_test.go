package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

func TestScreenOffsets(t *testing.T) {
	tests := []struct {
		name          string
		x, y          int
		width, height int
		wantX, wantY  float64
	}{
		{"single sample is centered", 0, 0, 1, 1, 0, 0},
		{"square top-left", 0, 0, 4, 4, -0.75, 0.75},
		{"square bottom-right", 3, 3, 4, 4, 0.75, -0.75},
		{"wide image keeps aspect", 0, 0, 4, 2, -0.75, 0.25},
		{"tall image keeps aspect", 1, 3, 2, 4, 0.25, -0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sx, sy := ScreenOffsets(tt.x, tt.y, tt.width, tt.height)
			if math.Abs(sx-tt.wantX) > 1e-12 || math.Abs(sy-tt.wantY) > 1e-12 {
				t.Errorf("ScreenOffsets = (%v, %v), want (%v, %v)", sx, sy, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestSampleRay_Symmetry(t *testing.T) {
	camera := scene.DefaultCamera()
	left := SampleRay(camera, 0, 5, 10, 10)
	right := SampleRay(camera, 9, 5, 10, 10)

	if math.Abs(left.Direction.X+right.Direction.X) > 1e-12 {
		t.Errorf("opposite samples should mirror in x: %v vs %v", left.Direction, right.Direction)
	}
	if left.Origin != (core.Vec3{}) {
		t.Errorf("rays should start at the eye, got %v", left.Origin)
	}
	if math.Abs(left.Direction.Length()-1) > 1e-12 {
		t.Errorf("camera rays should be normalized")
	}
}
