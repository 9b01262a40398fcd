package pipeline

import (
	"image"
	"math"
	"strings"

	"github.com/disintegration/imaging"
)

// ColorProfileStep converts pages to the target device's color space.
// Grayscale panels get a perceptual luma conversion plus posterization
// when the bit depth is below 8; color panels get a best-effort matrix
// conversion from sRGB into the device gamut. Unknown gamuts pass
// through unchanged.
type ColorProfileStep struct {
	colorSupport bool
	gamut        string
	bitDepth     int
}

func NewColorProfileStep(colorSupport bool, gamut string, bitDepth int) *ColorProfileStep {
	return &ColorProfileStep{
		colorSupport: colorSupport,
		gamut:        strings.ToLower(gamut),
		bitDepth:     bitDepth,
	}
}

func (s *ColorProfileStep) Name() string {
	if !s.colorSupport {
		return "ColorProfile(grayscale)"
	}
	if s.gamut == "" {
		return "ColorProfile(none)"
	}
	return "ColorProfile(" + s.gamut + ")"
}

func (s *ColorProfileStep) Apply(img image.Image) (image.Image, error) {
	out := imaging.Clone(img)

	if !s.colorSupport {
		grayscaleProfile(out, s.bitDepth)
		return out, nil
	}

	switch s.gamut {
	case "dci-p3":
		applyGamutMatrix(out, srgbToP3)
	case "adobe-rgb":
		applyGamutMatrix(out, srgbToAdobeRGB)
	}
	// sRGB sources need no conversion; unknown gamuts pass through.
	return out, nil
}

func grayscaleProfile(img *image.NRGBA, bitDepth int) {
	var posterize func(uint8) uint8
	if bitDepth < 8 {
		levels := 1 << bitDepth
		width := 256 / levels
		posterize = func(v uint8) uint8 {
			return uint8(int(v) / width * width)
		}
	}

	for i := 0; i < len(img.Pix); i += 4 {
		v := clamp8(luma(img.Pix[i], img.Pix[i+1], img.Pix[i+2]))
		if posterize != nil {
			v = posterize(v)
		}
		img.Pix[i] = v
		img.Pix[i+1] = v
		img.Pix[i+2] = v
	}
}

// Linear-light RGB→RGB matrices, rows in reading order. Both targets
// share the sRGB D65 white point, so a 3x3 matrix captures the gamut
// remap; transfer curves are approximated with the sRGB curve.
var (
	srgbToP3 = [9]float64{
		0.8225, 0.1774, 0.0000,
		0.0332, 0.9669, 0.0000,
		0.0171, 0.0724, 0.9108,
	}
	srgbToAdobeRGB = [9]float64{
		0.7152, 0.2849, 0.0000,
		0.0000, 1.0000, 0.0000,
		0.0000, 0.0412, 0.9589,
	}
)

func applyGamutMatrix(img *image.NRGBA, m [9]float64) {
	for i := 0; i < len(img.Pix); i += 4 {
		r := srgbToLinear(img.Pix[i])
		g := srgbToLinear(img.Pix[i+1])
		b := srgbToLinear(img.Pix[i+2])

		img.Pix[i] = linearToSRGB(m[0]*r + m[1]*g + m[2]*b)
		img.Pix[i+1] = linearToSRGB(m[3]*r + m[4]*g + m[5]*b)
		img.Pix[i+2] = linearToSRGB(m[6]*r + m[7]*g + m[8]*b)
	}
}

func srgbToLinear(v uint8) float64 {
	c := float64(v) / 255
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

func linearToSRGB(c float64) uint8 {
	if c <= 0 {
		return 0
	}
	if c >= 1 {
		return 255
	}
	if c <= 0.0031308 {
		return clamp8(c * 12.92 * 255)
	}
	return clamp8((1.055*math.Pow(c, 1/2.4) - 0.055) * 255)
}
