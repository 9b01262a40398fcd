package pipeline

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// ContrastStep scales pixel distance from the image's mean luminance.
// 1.0 is a no-op, higher values deepen blacks and brighten whites, which
// matters most on e-ink panels with their compressed dynamic range.
type ContrastStep struct {
	factor float64
}

func NewContrastStep(factor float64) *ContrastStep {
	return &ContrastStep{factor: factor}
}

func (s *ContrastStep) Name() string {
	return fmt.Sprintf("Contrast(%.1f)", s.factor)
}

func (s *ContrastStep) Apply(img image.Image) (image.Image, error) {
	if s.factor == 1.0 {
		return img, nil
	}
	return contrast(imaging.Clone(img), s.factor), nil
}

// contrast interpolates between a uniform gray at the image's mean
// luminance (factor 0) and the original (factor 1).
func contrast(img *image.NRGBA, factor float64) *image.NRGBA {
	mean := clamp8(meanLuma(img))
	gray := flat(img, mean, mean, mean)
	return enhance(gray, img, factor)
}
