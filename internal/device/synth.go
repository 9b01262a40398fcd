package device

import "shiroink/internal/pipeline"

// Synthesize builds a processing pipeline tailored to a device from its
// display characteristics alone. The emitted order is fixed: scan
// correction first, then color space conversion, then the tone and
// sharpness adjustments, with quantization last for limited palettes.
// The resize step is not included; the caller inserts it via WithResize
// once the output resolution is settled.
func Synthesize(spec Spec) *pipeline.Pipeline {
	p := pipeline.New().
		AddStep(pipeline.NewAutoRotateStep(5.0, 0.5)).
		AddStep(pipeline.NewSmartCropStep(245, 10))

	// E-ink panels diffuse ink visibly, so they get stronger text
	// enhancement than emissive displays.
	switch {
	case spec.Display == DisplayEInk && !spec.ColorSupport:
		p.AddStep(pipeline.NewTextEnhanceStep(1.5, 0.3))
	case spec.Display == DisplayEInk:
		p.AddStep(pipeline.NewTextEnhanceStep(1.3, 0.25))
	default:
		p.AddStep(pipeline.NewTextEnhanceStep(1.4, 0.25))
	}

	p.AddStep(pipeline.NewColorProfileStep(spec.ColorSupport, string(spec.Gamut), spec.BitDepth))

	contrast := 1.2
	if spec.Display == DisplayEInk {
		if spec.ColorSupport {
			contrast = 1.3
		} else {
			contrast = 1.6
		}
	}
	p.AddStep(pipeline.NewContrastStep(contrast))

	sharpen := sharpenFactor(spec)
	p.AddStep(pipeline.NewSharpenStep(sharpen))

	// Full-color panels render anything; only limited palettes need
	// quantization.
	if spec.BitDepth < 16 {
		if spec.ColorSupport {
			p.AddStep(pipeline.NewColorQuantizeStep(spec.MaxColors))
		} else {
			p.AddStep(pipeline.NewQuantizeStep(spec.BitDepth))
		}
	}

	return p
}

func sharpenFactor(spec Spec) float64 {
	if spec.Display == DisplayEInk {
		if spec.PPI >= 300 {
			return 1.3
		}
		return 1.2
	}
	if spec.PPI >= 300 {
		return 1.4
	}
	return 1.3
}

// Pipeline returns the device's synthesized pipeline with the resize
// step placed for its native resolution.
func (s Spec) Pipeline() *pipeline.Pipeline {
	return Synthesize(s).WithResize(s.Resolution)
}
