package pipeline

import (
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// QuantizeStep reduces the color count to what the target panel can
// physically show. Grayscale mode snaps luminance to an evenly spaced
// gray ramp (16 levels for 4-bit e-ink); color mode posterizes each
// channel so the total palette stays within maxColors.
type QuantizeStep struct {
	colorMode bool
	bitDepth  int
	maxColors int
}

// NewQuantizeStep builds a grayscale quantizer with 2^bitDepth levels.
func NewQuantizeStep(bitDepth int) *QuantizeStep {
	if bitDepth < 1 {
		bitDepth = 4
	}
	return &QuantizeStep{bitDepth: bitDepth}
}

// NewColorQuantizeStep builds a color quantizer targeting maxColors total.
func NewColorQuantizeStep(maxColors int) *QuantizeStep {
	if maxColors < 8 {
		maxColors = 8
	}
	return &QuantizeStep{colorMode: true, maxColors: maxColors}
}

func (s *QuantizeStep) Name() string {
	if s.colorMode {
		return fmt.Sprintf("Quantize(colors=%d)", s.maxColors)
	}
	return fmt.Sprintf("Quantize(%d-bit)", s.bitDepth)
}

func (s *QuantizeStep) Apply(img image.Image) (image.Image, error) {
	out := imaging.Clone(img)
	if s.colorMode {
		quantizeColor(out, s.maxColors)
	} else {
		quantizeGray(out, s.bitDepth)
	}
	return out, nil
}

func quantizeGray(img *image.NRGBA, bitDepth int) {
	levels := 1 << bitDepth
	if levels > 256 {
		levels = 256
	}
	step := 255.0 / float64(levels-1)

	for i := 0; i < len(img.Pix); i += 4 {
		y := luma(img.Pix[i], img.Pix[i+1], img.Pix[i+2])
		v := clamp8(math.Round(y/step) * step)
		img.Pix[i] = v
		img.Pix[i+1] = v
		img.Pix[i+2] = v
	}
}

func quantizeColor(img *image.NRGBA, maxColors int) {
	// Per-channel posterization: n levels per channel yields n^3 colors,
	// so choose the largest n that fits.
	levels := int(math.Cbrt(float64(maxColors)))
	if levels < 2 {
		levels = 2
	}
	step := 255.0 / float64(levels-1)

	for i := 0; i < len(img.Pix); i += 4 {
		for c := 0; c < 3; c++ {
			img.Pix[i+c] = clamp8(math.Round(float64(img.Pix[i+c])/step) * step)
		}
	}
}
