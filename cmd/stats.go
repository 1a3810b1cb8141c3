package cmd

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"

	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/df07/go-whitted-raytracer/pkg/tracer"
)

// renderStatsTable builds a per-worker table of render statistics
func renderStatsTable(stats renderer.RenderStats) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Worker", "Tiles", "Samples", "Hits", "Busy"})
	for _, w := range stats.Workers {
		table.Append([]string{
			fmt.Sprintf("%d", w.ID),
			fmt.Sprintf("%d", w.Tiles),
			fmt.Sprintf("%d", w.Samples),
			fmt.Sprintf("%d", w.Hits),
			w.Busy.String(),
		})
	}
	table.SetFooter([]string{
		"TOTAL",
		fmt.Sprintf("%d", stats.Tiles),
		fmt.Sprintf("%d", stats.Samples),
		fmt.Sprintf("%02.1f %%", stats.HitRatio()*100),
		stats.Duration.String(),
	})

	table.Render()
	return buf.String()
}

// sceneStatsTable summarizes the scene contents and its BVH
func sceneStatsTable(s *scene.Scene, bvh tracer.BVHStats) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Section", "Item", "Value"})

	opts := s.Options
	table.Append([]string{"Output", "Name", opts.OutputName})
	table.Append([]string{"", "Format", opts.Format})
	table.Append([]string{"", "Size", fmt.Sprintf("%dx%d", opts.Width, opts.Height)})
	table.Append([]string{"", "Supersample", fmt.Sprintf("%d", opts.Supersample)})
	table.Append([]string{"", "Bounces", fmt.Sprintf("%d", opts.MaxBounces)})
	table.Append([]string{"", "Exposure", fmt.Sprintf("%g", opts.Exposure)})
	table.Append([]string{" ", " ", " "})
	table.Append([]string{"Scene", "Objects", fmt.Sprintf("%d", s.GetPrimitiveCount())})
	table.Append([]string{"", "Unbounded", fmt.Sprintf("%d", len(s.UnboundedObjects()))})
	table.Append([]string{"", "Lights", fmt.Sprintf("%d", len(s.Lights))})
	table.Append([]string{" ", " ", " "})
	table.Append([]string{"BVH", "Nodes", fmt.Sprintf("%d", bvh.Nodes)})
	table.Append([]string{"", "Leaves", fmt.Sprintf("%d", bvh.Leaves)})
	table.Append([]string{"", "Depth", fmt.Sprintf("%d", bvh.MaxDepth)})
	table.Append([]string{"", "Object refs", fmt.Sprintf("%d", bvh.ObjectRefs)})
	table.Append([]string{"", "Largest leaf", fmt.Sprintf("%d", bvh.MaxLeaf)})

	table.Render()
	return buf.String()
}
