package renderer

import "time"

// TileStats counts the work done for one tile
type TileStats struct {
	Samples int // Camera rays cast
	Hits    int // Camera rays that hit an object
}

// WorkerStats aggregates the tiles rendered by one worker
type WorkerStats struct {
	ID      int
	Tiles   int
	Samples int
	Hits    int
	Busy    time.Duration // Time spent rendering tiles
}

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width    int // Supersampled grid width
	Height   int // Supersampled grid height
	Tiles    int
	Samples  int
	Hits     int
	Duration time.Duration // Wall time of the render
	Workers  []WorkerStats
}

// HitRatio is the fraction of camera rays that hit an object
func (s RenderStats) HitRatio() float64 {
	if s.Samples == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.Samples)
}

// addTile folds a tile result into the totals. Samples of an abandoned tile
// still count, the tile itself does not.
func (s *RenderStats) addTile(result TileResult) {
	w := &s.Workers[result.WorkerID]
	w.Samples += result.Stats.Samples
	w.Hits += result.Stats.Hits
	w.Busy += result.Elapsed
	if !result.Skipped {
		w.Tiles++
		s.Tiles++
	}
	s.Samples += result.Stats.Samples
	s.Hits += result.Stats.Hits
}
