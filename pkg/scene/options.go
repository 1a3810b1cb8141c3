package scene

// Options are the global rendering options declared by a scene file
type Options struct {
	Width       int     // Output image width in pixels
	Height      int     // Output image height in pixels
	MaxBounces  int     // Reflection recursion limit
	Supersample int     // Samples per pixel along each axis (aa)
	Exposure    float64 // Exposure for tone mapping; 0 disables it
	OutputName  string  // Output file name from the header
	Format      string  // Output image format from the header
}

// DefaultOptions returns the options used when a scene file does not override them
func DefaultOptions() Options {
	return Options{
		Width:       512,
		Height:      512,
		MaxBounces:  4,
		Supersample: 1,
		Exposure:    0,
		OutputName:  "out.png",
		Format:      "png",
	}
}

// SampleWidth is the width of the supersampled grid
func (o Options) SampleWidth() int {
	return o.Width * o.Supersample
}

// SampleHeight is the height of the supersampled grid
func (o Options) SampleHeight() int {
	return o.Height * o.Supersample
}
