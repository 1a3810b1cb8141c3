package renderer

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Expose applies 1 - exp(-c * exposure) per channel. Exposure <= 0 leaves
// the color unchanged.
func Expose(color core.Vec3, exposure float64) core.Vec3 {
	if exposure <= 0 {
		return color
	}
	return color.Map(func(c float64) float64 {
		return 1 - math.Exp(-c*exposure)
	})
}

// LinearToSRGB applies the sRGB transfer curve to a linear value clamped to [0,1]
func LinearToSRGB(c float64) float64 {
	c = clamp01(c)
	if c <= 0.0031308 {
		return 12.92 * c
	}
	return clamp01(1.055*math.Pow(c, 1.0/2.4) - 0.055)
}

// ToByte rounds a value in [0,1] to 8 bits; out-of-range values are clamped
func ToByte(c float64) uint8 {
	return uint8(math.Round(clamp01(c) * 255))
}

// clamp01 also maps NaN to 0
func clamp01(c float64) float64 {
	if !(c > 0) {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}
