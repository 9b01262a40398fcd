package pipeline

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// SharpenStep applies a global sharpness multiplier. 1.0 leaves the image
// unchanged, below 1.0 softens, above 1.0 sharpens.
type SharpenStep struct {
	factor float64
}

func NewSharpenStep(factor float64) *SharpenStep {
	return &SharpenStep{factor: factor}
}

func (s *SharpenStep) Name() string {
	return fmt.Sprintf("Sharpen(%.1f)", s.factor)
}

func (s *SharpenStep) Apply(img image.Image) (image.Image, error) {
	if s.factor == 1.0 {
		return img, nil
	}
	return sharpness(imaging.Clone(img), s.factor), nil
}

// smoothKernel is the mild 3x3 smoothing filter the sharpness adjustment
// interpolates against.
var smoothKernel = [9]float64{
	1.0 / 13, 1.0 / 13, 1.0 / 13,
	1.0 / 13, 5.0 / 13, 1.0 / 13,
	1.0 / 13, 1.0 / 13, 1.0 / 13,
}

// sharpness interpolates between a smoothed copy (factor 0) and the
// original (factor 1); factors above 1 extrapolate past the original,
// which is what produces the sharpening overshoot.
func sharpness(img *image.NRGBA, factor float64) *image.NRGBA {
	smoothed := imaging.Convolve3x3(img, smoothKernel, nil)
	return enhance(smoothed, img, factor)
}
