// Package device holds the immutable registry of target display
// specifications used to synthesize processing pipelines.
package device

import (
	"fmt"

	"shiroink/internal/pipeline"
)

// DisplayClass identifies the display technology of a device.
type DisplayClass string

const (
	DisplayEInk   DisplayClass = "e-ink"
	DisplayLCD    DisplayClass = "lcd"
	DisplayOLED   DisplayClass = "oled"
	DisplayRetina DisplayClass = "retina"
)

// ColorGamut identifies the color space a device is calibrated for.
type ColorGamut string

const (
	GamutNone     ColorGamut = ""
	GamutSRGB     ColorGamut = "srgb"
	GamutDCIP3    ColorGamut = "dci-p3"
	GamutAdobeRGB ColorGamut = "adobe-rgb"
)

// Spec describes one target device. Specs are built once at startup and
// never mutated; they are freely shared across workers without locking.
type Spec struct {
	ID                string
	Name              string
	Resolution        pipeline.Resolution
	Display           DisplayClass
	PPI               int
	ScreenSizeInches  float64
	ColorSupport      bool
	Gamut             ColorGamut
	BitDepth          int
	MaxColors         int
	RecommendedPreset string
	Description       string
}

func (s Spec) String() string {
	colorInfo := "B&W"
	if s.ColorSupport {
		colorInfo = "Color"
	}
	return fmt.Sprintf("%s (%s, %s, %s)", s.Name, s.Resolution, s.Display, colorInfo)
}

// template carries the display characteristics shared by a family of
// devices. Brand files reference templates by the constants below.
type template struct {
	display      DisplayClass
	colorSupport bool
	gamut        ColorGamut
	bitDepth     int
	maxColors    int
	preset       string
}

const (
	templateEInkBW    = "eink_bw"
	templateEInkColor = "eink_color"
	templateColor     = "color"
)

var templates = map[string]template{
	templateEInkBW: {
		display:      DisplayEInk,
		colorSupport: false,
		gamut:        GamutNone,
		bitDepth:     4,
		maxColors:    16,
		preset:       "kindle",
	},
	templateEInkColor: {
		display:      DisplayEInk,
		colorSupport: true,
		gamut:        GamutSRGB,
		bitDepth:     12,
		maxColors:    4096,
		preset:       "pocketbook_color",
	},
	templateColor: {
		display:      DisplayRetina,
		colorSupport: true,
		gamut:        GamutDCIP3,
		bitDepth:     24,
		maxColors:    16777216,
		preset:       "ipad",
	},
}

// definition is the raw per-device entry in a brand file.
type definition struct {
	key        string
	name       string
	width      int
	height     int
	ppi        int
	screenSize float64
	template   string
	desc       string
}

func (d definition) spec() Spec {
	t := templates[d.template]
	return Spec{
		ID:                d.key,
		Name:              d.name,
		Resolution:        pipeline.Resolution{Width: d.width, Height: d.height},
		Display:           t.display,
		PPI:               d.ppi,
		ScreenSizeInches:  d.screenSize,
		ColorSupport:      t.colorSupport,
		Gamut:             t.gamut,
		BitDepth:          t.bitDepth,
		MaxColors:         t.maxColors,
		RecommendedPreset: t.preset,
		Description:       d.desc,
	}
}
