package pipeline

import (
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
)

func TestResizeLetterboxesToExactTarget(t *testing.T) {
	step := NewResizeStep(Resolution{Width: 100, Height: 150})

	out, err := step.Apply(whiteImage(400, 300))
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	b := out.Bounds()
	if b.Dx() != 100 || b.Dy() != 150 {
		t.Fatalf("got %dx%d, want 100x150", b.Dx(), b.Dy())
	}
}

func TestResizeFillColorsLetterbox(t *testing.T) {
	// A square page in a wide target leaves side bars; those must take
	// the configured fill color, not the default white.
	step := NewResizeStepFill(Resolution{Width: 100, Height: 50}, color.Black)

	out, err := step.Apply(whiteImage(50, 50))
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	nrgba := imaging.Clone(out)
	if got := nrgba.NRGBAAt(0, 25); got.R != 0 || got.G != 0 || got.B != 0 {
		t.Fatalf("letterbox bar should use the fill color, got %v", got)
	}
	if got := nrgba.NRGBAAt(50, 25); got.R != 255 {
		t.Fatalf("page content should stay white, got %v", got)
	}
}

func TestResizeRejectsInvalidTarget(t *testing.T) {
	step := NewResizeStep(Resolution{Width: 0, Height: 150})
	if _, err := step.Apply(whiteImage(10, 10)); err == nil {
		t.Fatal("expected error for zero width")
	}
}

func TestContrastNeutralFactorIsNoop(t *testing.T) {
	src := pageWithContent(20, 20, image.Rect(5, 5, 15, 15))
	out, err := NewContrastStep(1.0).Apply(src)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if out != src {
		t.Fatal("factor 1.0 should return the input untouched")
	}
}

func TestContrastPushesAwayFromMean(t *testing.T) {
	// Half black, half white: boosting contrast must not move the
	// extremes toward each other.
	src := pageWithContent(20, 20, image.Rect(0, 0, 20, 10))
	out, err := NewContrastStep(1.6).Apply(src)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	nrgba := imaging.Clone(out)
	if got := nrgba.NRGBAAt(5, 5).R; got != 0 {
		t.Fatalf("black should stay black, got %d", got)
	}
	if got := nrgba.NRGBAAt(5, 15).R; got != 255 {
		t.Fatalf("white should stay white, got %d", got)
	}
}

func TestQuantizeGrayLimitsLevels(t *testing.T) {
	// A horizontal gradient exercises the whole range.
	src := imaging.New(256, 4, color.White)
	for x := 0; x < 256; x++ {
		for y := 0; y < 4; y++ {
			src.Set(x, y, color.NRGBA{uint8(x), uint8(x), uint8(x), 255})
		}
	}

	out, err := NewQuantizeStep(4).Apply(src)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	nrgba := imaging.Clone(out)
	levels := map[uint8]bool{}
	for x := 0; x < 256; x++ {
		px := nrgba.NRGBAAt(x, 0)
		levels[px.R] = true
		if px.R != px.G || px.G != px.B {
			t.Fatalf("quantized pixel not gray: %v", px)
		}
	}
	if len(levels) > 16 {
		t.Fatalf("expected at most 16 gray levels, got %d", len(levels))
	}
}

func TestColorQuantizePosterizesChannels(t *testing.T) {
	src := imaging.New(64, 1, color.White)
	for x := 0; x < 64; x++ {
		src.Set(x, 0, color.NRGBA{uint8(x * 4), uint8(255 - x*4), 128, 255})
	}

	out, err := NewColorQuantizeStep(4096).Apply(src)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	nrgba := imaging.Clone(out)
	reds := map[uint8]bool{}
	for x := 0; x < 64; x++ {
		reds[nrgba.NRGBAAt(x, 0).R] = true
	}
	// 4096 colors is 16 levels per channel.
	if len(reds) > 16 {
		t.Fatalf("expected at most 16 red levels, got %d", len(reds))
	}
}

func TestColorProfileGrayscalePath(t *testing.T) {
	src := imaging.New(4, 4, color.NRGBA{200, 50, 120, 255})

	out, err := NewColorProfileStep(false, "", 4).Apply(src)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	nrgba := imaging.Clone(out)
	px := nrgba.NRGBAAt(1, 1)
	if px.R != px.G || px.G != px.B {
		t.Fatalf("grayscale conversion left color: %v", px)
	}
	// 4-bit posterization quantizes to multiples of 16.
	if px.R%16 != 0 {
		t.Fatalf("expected 16-step posterization, got %d", px.R)
	}
}

func TestColorProfileUnknownGamutPassthrough(t *testing.T) {
	src := imaging.New(4, 4, color.NRGBA{200, 50, 120, 255})

	out, err := NewColorProfileStep(true, "display-x", 24).Apply(src)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	nrgba := imaging.Clone(out)
	if got := nrgba.NRGBAAt(1, 1); got != (color.NRGBA{200, 50, 120, 255}) {
		t.Fatalf("unknown gamut should pass through, got %v", got)
	}
}

func TestSharpenNeutralFactorIsNoop(t *testing.T) {
	src := whiteImage(10, 10)
	out, err := NewSharpenStep(1.0).Apply(src)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if out != src {
		t.Fatal("factor 1.0 should return the input untouched")
	}
}

func TestAutoRotateLeavesStraightPageAlone(t *testing.T) {
	src := pageWithContent(100, 140, image.Rect(20, 20, 80, 120))
	step := NewAutoRotateStep(5.0, 0.5)

	out, err := step.Apply(src)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if !out.Bounds().Size().Eq(src.Bounds().Size()) {
		t.Fatal("canvas size must be preserved")
	}
}

// fixedEstimator always reports the same skew.
type fixedEstimator struct{ angle float64 }

func (e fixedEstimator) EstimateSkew(image.Image) float64 { return e.angle }

func TestAutoRotateBand(t *testing.T) {
	src := pageWithContent(100, 100, image.Rect(40, 40, 60, 60))

	cases := []struct {
		angle      float64
		wantRotate bool
	}{
		{0.2, false}, // below threshold: noise
		{2.0, true},  // inside the band
		{8.0, false}, // beyond max: likely intentional
	}

	for _, tc := range cases {
		step := NewAutoRotateStepWith(5.0, 0.5, color.White, fixedEstimator{tc.angle})
		out, err := step.Apply(src)
		if err != nil {
			t.Fatalf("angle %.1f: %v", tc.angle, err)
		}
		if !out.Bounds().Size().Eq(src.Bounds().Size()) {
			t.Fatalf("angle %.1f: canvas size changed", tc.angle)
		}

		rotated := out != src
		if rotated != tc.wantRotate {
			t.Fatalf("angle %.1f: rotated=%v, want %v", tc.angle, rotated, tc.wantRotate)
		}
	}
}

func TestTextEnhancePreservesDimensions(t *testing.T) {
	src := pageWithContent(60, 80, image.Rect(10, 10, 50, 70))

	for _, step := range []Step{
		NewTextEnhanceStep(1.5, 0.3),
		NewAdaptiveTextEnhanceStep(1.6, 1.3),
	} {
		out, err := step.Apply(src)
		if err != nil {
			t.Fatalf("%s: %v", step.Name(), err)
		}
		if !out.Bounds().Size().Eq(src.Bounds().Size()) {
			t.Fatalf("%s changed dimensions", step.Name())
		}
	}
}
