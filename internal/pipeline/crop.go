package pipeline

import (
	"image"

	"github.com/disintegration/imaging"
)

// SmartCropStep detects and removes flat margins around page content.
// Scanned manga often carries large white borders; trimming them before
// the resize step maximizes usable screen area.
type SmartCropStep struct {
	threshold int
	minMargin int
}

// NewSmartCropStep builds a crop step. threshold is the brightness
// (0-255) above which pixels count as margin; minMargin is the border, in
// pixels, preserved around detected content.
func NewSmartCropStep(threshold, minMargin int) *SmartCropStep {
	return &SmartCropStep{threshold: threshold, minMargin: minMargin}
}

func (s *SmartCropStep) Name() string { return "SmartCrop" }

func (s *SmartCropStep) Apply(img image.Image) (image.Image, error) {
	gray := imaging.Grayscale(img)
	bounds := gray.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	// Difference from a flat plane at threshold brightness, amplified
	// (x2, -100) to suppress near-white noise before the bounding box.
	minX, minY := width, height
	maxX, maxY := -1, -1
	for y := 0; y < height; y++ {
		row := gray.Pix[y*gray.Stride : y*gray.Stride+width*4]
		for x := 0; x < width; x++ {
			diff := int(row[x*4]) - s.threshold
			if diff < 0 {
				diff = -diff
			}
			if diff*2-100 <= 0 {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}

	if maxX < 0 {
		return img, nil
	}

	left := max(0, minX-s.minMargin)
	top := max(0, minY-s.minMargin)
	right := min(width, maxX+1+s.minMargin)
	bottom := min(height, maxY+1+s.minMargin)

	// Skip the crop when it would only shave a few pixels.
	removed := left + top + (width - right) + (height - bottom)
	if removed <= s.minMargin*2 {
		return img, nil
	}

	return imaging.Crop(img, image.Rect(left, top, right, bottom)), nil
}
