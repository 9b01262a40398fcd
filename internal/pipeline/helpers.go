package pipeline

import (
	"image"

	"github.com/disintegration/imaging"
)

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}

// luma is the ITU-R 601-2 perceptual brightness of an NRGBA pixel.
func luma(r, g, b uint8) float64 {
	return 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
}

// meanLuma returns the average perceptual brightness over the image.
func meanLuma(img *image.NRGBA) float64 {
	bounds := img.Bounds()
	pixels := bounds.Dx() * bounds.Dy()
	if pixels == 0 {
		return 0
	}

	var sum float64
	for y := 0; y < bounds.Dy(); y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+bounds.Dx()*4]
		for x := 0; x < len(row); x += 4 {
			sum += luma(row[x], row[x+1], row[x+2])
		}
	}
	return sum / float64(pixels)
}

// enhance interpolates between base and img per channel:
// out = base + factor*(img-base). factor 0 yields base, 1 yields img,
// values beyond 1 overshoot. Alpha is taken from img. Both images must
// share dimensions.
func enhance(base, img *image.NRGBA, factor float64) *image.NRGBA {
	out := imaging.Clone(img)
	for i := 0; i+3 < len(out.Pix); i += 4 {
		for c := 0; c < 3; c++ {
			b := float64(base.Pix[i+c])
			v := float64(img.Pix[i+c])
			out.Pix[i+c] = clamp8(b + factor*(v-b))
		}
	}
	return out
}

// flat returns a uniformly filled NRGBA image matching the bounds of img.
func flat(img *image.NRGBA, r, g, b uint8) *image.NRGBA {
	bounds := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	for i := 0; i+3 < len(out.Pix); i += 4 {
		out.Pix[i] = r
		out.Pix[i+1] = g
		out.Pix[i+2] = b
		out.Pix[i+3] = 255
	}
	return out
}
