package renderer

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Sample is the result of a single camera ray. Misses keep a zero color.
type Sample struct {
	Color core.Vec3
	Hit   bool
}

// Alpha is 1 for a hit and 0 for a miss
func (s Sample) Alpha() float64 {
	if s.Hit {
		return 1
	}
	return 0
}

// SampleBuffer is a row-major grid of samples with the origin at the top left
type SampleBuffer struct {
	Width   int
	Height  int
	Samples [][]Sample // Indexed [y][x]
}

// NewSampleBuffer allocates an empty width x height buffer
func NewSampleBuffer(width, height int) *SampleBuffer {
	samples := make([][]Sample, height)
	for y := range samples {
		samples[y] = make([]Sample, width)
	}
	return &SampleBuffer{Width: width, Height: height, Samples: samples}
}

// At returns the sample at (x, y)
func (b *SampleBuffer) At(x, y int) Sample {
	return b.Samples[y][x]
}

// Set stores the sample at (x, y)
func (b *SampleBuffer) Set(x, y int, s Sample) {
	b.Samples[y][x] = s
}
