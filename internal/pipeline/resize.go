package pipeline

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Resolution is a target canvas size in pixels.
type Resolution struct {
	Width  int
	Height int
}

func (r Resolution) String() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

// ResizeStep scales an image to fit within the target resolution,
// preserving aspect ratio, and pads the remainder with a fill color so
// the output is exactly the target size. This is what guarantees output
// dimensions match the device screen.
type ResizeStep struct {
	target Resolution
	fill   color.Color
}

// NewResizeStep builds a resize step with a white letterbox fill.
func NewResizeStep(target Resolution) *ResizeStep {
	return &ResizeStep{target: target, fill: color.White}
}

// NewResizeStepFill builds a resize step with a custom letterbox fill.
func NewResizeStepFill(target Resolution, fill color.Color) *ResizeStep {
	return &ResizeStep{target: target, fill: fill}
}

func (s *ResizeStep) Name() string {
	return fmt.Sprintf("Resize(%s)", s.target)
}

func (s *ResizeStep) Apply(img image.Image) (image.Image, error) {
	if s.target.Width <= 0 || s.target.Height <= 0 {
		return nil, fmt.Errorf("invalid target resolution %s", s.target)
	}
	return Letterbox(img, s.target, s.fill), nil
}

// Letterbox scales img to fit within target with Lanczos resampling and
// centers it on a filled canvas of exactly target size.
func Letterbox(img image.Image, target Resolution, fill color.Color) *image.NRGBA {
	fitted := imaging.Fit(img, target.Width, target.Height, imaging.Lanczos)
	canvas := imaging.New(target.Width, target.Height, fill)
	return imaging.PasteCenter(canvas, fitted)
}
