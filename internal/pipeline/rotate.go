package pipeline

import (
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/disintegration/imaging"
)

// SkewEstimator estimates the skew angle of a page in degrees. Positive
// means the content is rotated clockwise.
type SkewEstimator interface {
	EstimateSkew(img image.Image) float64
}

// AutoRotateStep corrects slight page skew from imperfect scans. The
// correction only fires inside the [threshold, maxAngle] band: smaller
// angles are noise, larger ones are likely intentional or misdetected.
// The canvas size never changes; exposed corners are filled with fill.
type AutoRotateStep struct {
	maxAngle  float64
	threshold float64
	fill      color.Color
	estimator SkewEstimator
}

// NewAutoRotateStep builds a rotation step using edge-based skew
// estimation with an aspect-ratio fallback, filling corners with white.
func NewAutoRotateStep(maxAngle, threshold float64) *AutoRotateStep {
	return &AutoRotateStep{
		maxAngle:  maxAngle,
		threshold: threshold,
		fill:      color.White,
		estimator: edgeEstimator{fallback: aspectEstimator{}},
	}
}

// NewAutoRotateStepWith builds a rotation step with a custom estimator
// and fill color.
func NewAutoRotateStepWith(maxAngle, threshold float64, fill color.Color, est SkewEstimator) *AutoRotateStep {
	return &AutoRotateStep{maxAngle: maxAngle, threshold: threshold, fill: fill, estimator: est}
}

func (s *AutoRotateStep) Name() string { return "AutoRotate" }

func (s *AutoRotateStep) Apply(img image.Image) (image.Image, error) {
	angle := s.estimator.EstimateSkew(img)

	if math.Abs(angle) < s.threshold || math.Abs(angle) > s.maxAngle {
		return img, nil
	}

	bounds := img.Bounds()
	rotated := imaging.Rotate(img, angle, s.fill)
	return imaging.CropCenter(rotated, bounds.Dx(), bounds.Dy()), nil
}

// edgeEstimator derives skew from the orientation of strong gradients:
// panel borders and text baselines dominate manga pages, so the median of
// near-horizontal edge angles tracks the page skew. Falls back when too
// few strong edges exist.
type edgeEstimator struct {
	fallback SkewEstimator
}

const (
	edgeSampleDim    = 800
	edgeMagThreshold = 96.0
	edgeMinSamples   = 64
)

func (e edgeEstimator) EstimateSkew(img image.Image) float64 {
	gray := imaging.Grayscale(img)
	bounds := gray.Bounds()
	if bounds.Dx() > edgeSampleDim || bounds.Dy() > edgeSampleDim {
		gray = imaging.Fit(gray, edgeSampleDim, edgeSampleDim, imaging.Box)
		bounds = gray.Bounds()
	}

	width, height := bounds.Dx(), bounds.Dy()
	at := func(x, y int) float64 {
		return float64(gray.Pix[y*gray.Stride+x*4])
	}

	var angles []float64
	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			gx := at(x+1, y-1) + 2*at(x+1, y) + at(x+1, y+1) -
				at(x-1, y-1) - 2*at(x-1, y) - at(x-1, y+1)
			gy := at(x-1, y+1) + 2*at(x, y+1) + at(x+1, y+1) -
				at(x-1, y-1) - 2*at(x, y-1) - at(x+1, y-1)
			if math.Hypot(gx, gy) < edgeMagThreshold {
				continue
			}

			// Edge direction is perpendicular to the gradient.
			angle := math.Atan2(gy, gx)*180/math.Pi - 90
			for angle <= -90 {
				angle += 180
			}
			for angle > 90 {
				angle -= 180
			}

			switch {
			case math.Abs(angle) < 45:
				angles = append(angles, angle)
			case angle > 0:
				angles = append(angles, angle-90)
			default:
				angles = append(angles, angle+90)
			}
		}
	}

	if len(angles) < edgeMinSamples {
		if e.fallback != nil {
			return e.fallback.EstimateSkew(img)
		}
		return 0
	}

	sort.Float64s(angles)
	return angles[len(angles)/2]
}

// aspectEstimator is a coarse heuristic used when edge analysis finds
// nothing usable: compare the content bounding box aspect ratio against
// the full-page ratio and guess a one-degree correction when they
// diverge.
type aspectEstimator struct{}

func (aspectEstimator) EstimateSkew(img image.Image) float64 {
	gray := imaging.Grayscale(img)
	bounds := gray.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width == 0 || height == 0 {
		return 0
	}

	minX, minY := width, height
	maxX, maxY := -1, -1
	for y := 0; y < height; y++ {
		row := gray.Pix[y*gray.Stride : y*gray.Stride+width*4]
		for x := 0; x < width; x++ {
			if row[x*4] < 128 {
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
	}
	if maxX <= minX || maxY <= minY {
		return 0
	}

	expected := float64(height) / float64(width)
	actual := float64(maxY-minY) / float64(maxX-minX)
	if math.Abs(expected-actual) <= 0.1 {
		return 0
	}
	if actual > expected {
		return 1.0
	}
	return -1.0
}
