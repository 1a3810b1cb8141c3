package cmd

import (
	"strings"
	"testing"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/df07/go-whitted-raytracer/pkg/tracer"
)

func TestRenderStatsTable(t *testing.T) {
	stats := renderer.RenderStats{
		Tiles:    3,
		Samples:  100,
		Hits:     25,
		Duration: 2 * time.Second,
		Workers: []renderer.WorkerStats{
			{ID: 0, Tiles: 2, Samples: 70, Hits: 20, Busy: time.Second},
			{ID: 1, Tiles: 1, Samples: 30, Hits: 5, Busy: time.Second},
		},
	}

	table := renderStatsTable(stats)
	for _, want := range []string{"Worker", "Samples", "TOTAL", "25.0 %", "70", "2s"} {
		if !strings.Contains(table, want) {
			t.Errorf("table missing %q:\n%s", want, table)
		}
	}
}

func TestSceneStatsTable(t *testing.T) {
	sc := scene.New(scene.DefaultCamera(), nil, nil, scene.DefaultOptions())
	table := sceneStatsTable(sc, tracer.BVHStats{Nodes: 9, Leaves: 8, MaxDepth: 1})

	for _, want := range []string{"Objects", "Lights", "Nodes", "out.png", "512x512"} {
		if !strings.Contains(table, want) {
			t.Errorf("table missing %q:\n%s", want, table)
		}
	}
}
