package pipeline

import (
	"fmt"
	"sort"
	"strings"
)

// UnknownPresetError reports a preset name that has no registered
// builder, listing the valid names.
type UnknownPresetError struct {
	Name      string
	Available []string
}

func (e *UnknownPresetError) Error() string {
	return fmt.Sprintf("unknown preset %q, available presets: %s",
		e.Name, strings.Join(e.Available, ", "))
}

// presetBuilders maps preset names to pipeline constructors. Every
// builder omits the resize step, which WithResize inserts at the
// correct position once the target resolution is known.
var presetBuilders = map[string]func() *Pipeline{
	"kindle":                 presetKindle,
	"tablet":                 presetTablet,
	"print":                  presetPrint,
	"high_quality":           presetHighQuality,
	"minimal":                func() *Pipeline { return New() },
	"kobo":                   presetKobo,
	"tolino":                 presetEInkStandard,
	"pocketbook":             presetEInkStandard,
	"pocketbook_color":       presetColorEInk,
	"ipad":                   presetIPad,
	"eink":                   presetEInkStandard,
	"scanned_manga":          presetEInkStandard,
	"scanned_manga_advanced": presetScannedAdvanced,
}

// Preset returns the pipeline registered under name. Names are matched
// case-insensitively.
func Preset(name string) (*Pipeline, error) {
	build, ok := presetBuilders[strings.ToLower(name)]
	if !ok {
		return nil, &UnknownPresetError{Name: name, Available: PresetNames()}
	}
	return build(), nil
}

// PresetNames returns the registered preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presetBuilders))
	for name := range presetBuilders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// scanPrep adds the scan-correction steps shared by every device preset:
// rotation fix first so the crop sees straightened margins, then margin
// removal, then text enhancement tuned per display.
func scanPrep(p *Pipeline, sharpen, edgeEnhance float64) *Pipeline {
	return p.
		AddStep(NewAutoRotateStep(5.0, 0.5)).
		AddStep(NewSmartCropStep(245, 10)).
		AddStep(NewTextEnhanceStep(sharpen, edgeEnhance))
}

func presetKindle() *Pipeline {
	return scanPrep(New(), 1.5, 0.3).
		AddStep(NewContrastStep(1.5)).
		AddStep(NewSharpenStep(1.2)).
		AddStep(NewQuantizeStep(4))
}

func presetTablet() *Pipeline {
	return scanPrep(New(), 1.3, 0.25).
		AddStep(NewContrastStep(1.3)).
		AddStep(NewSharpenStep(1.1))
}

func presetPrint() *Pipeline {
	return New().AddStep(NewSharpenStep(1.05))
}

func presetHighQuality() *Pipeline {
	return New().
		AddStep(NewContrastStep(1.2)).
		AddStep(NewSharpenStep(1.4))
}

func presetKobo() *Pipeline {
	return scanPrep(New(), 1.5, 0.3).
		AddStep(NewContrastStep(1.6)).
		AddStep(NewSharpenStep(1.3)).
		AddStep(NewQuantizeStep(4))
}

// presetEInkStandard is the common grayscale e-ink treatment shared by
// the tolino, pocketbook, eink and scanned_manga presets.
func presetEInkStandard() *Pipeline {
	return scanPrep(New(), 1.5, 0.3).
		AddStep(NewContrastStep(1.5)).
		AddStep(NewSharpenStep(1.2)).
		AddStep(NewQuantizeStep(4))
}

func presetColorEInk() *Pipeline {
	return scanPrep(New(), 1.3, 0.25).
		AddStep(NewContrastStep(1.3)).
		AddStep(NewSharpenStep(1.1))
}

func presetIPad() *Pipeline {
	return scanPrep(New(), 1.4, 0.25).
		AddStep(NewContrastStep(1.2)).
		AddStep(NewSharpenStep(1.4))
}

func presetScannedAdvanced() *Pipeline {
	return New().
		AddStep(NewAutoRotateStep(5.0, 0.5)).
		AddStep(NewSmartCropStep(240, 8)).
		AddStep(NewAdaptiveTextEnhanceStep(1.6, 1.3)).
		AddStep(NewContrastStep(1.6)).
		AddStep(NewSharpenStep(1.3)).
		AddStep(NewQuantizeStep(4))
}
