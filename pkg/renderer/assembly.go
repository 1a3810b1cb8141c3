package renderer

import (
	"image"
	"image/color"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Assemble reduces every aa x aa block of the sample buffer to one pixel.
// Colors are averaged weighted by alpha so misses do not darken edges;
// alpha itself is the plain average. Exposure and the sRGB curve are applied
// to the averaged linear color.
func Assemble(buffer *SampleBuffer, aa int, exposure float64) *image.NRGBA {
	width := buffer.Width / aa
	height := buffer.Height / aa
	img := image.NewNRGBA(image.Rect(0, 0, width, height))

	blockSize := float64(aa * aa)
	for py := 0; py < height; py++ {
		for px := 0; px < width; px++ {
			var (
				colorSum core.Vec3
				alphaSum float64
			)
			for y := py * aa; y < (py+1)*aa; y++ {
				for x := px * aa; x < (px+1)*aa; x++ {
					sample := buffer.At(x, y)
					alpha := sample.Alpha()
					colorSum = colorSum.Add(sample.Color.Multiply(alpha))
					alphaSum += alpha
				}
			}

			if alphaSum == 0 {
				continue // fully transparent
			}

			linear := Expose(colorSum.Multiply(1/alphaSum), exposure)
			img.SetNRGBA(px, py, color.NRGBA{
				R: ToByte(LinearToSRGB(linear.X)),
				G: ToByte(LinearToSRGB(linear.Y)),
				B: ToByte(LinearToSRGB(linear.Z)),
				A: ToByte(alphaSum / blockSize),
			})
		}
	}

	return img
}
