package device

import (
	"strings"
	"testing"
)

func TestSynthesizedOrder(t *testing.T) {
	spec, err := Lookup("kindle_paperwhite_12")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}

	names := Synthesize(spec).StepNames()
	markers := []string{"AutoRotate", "SmartCrop", "TextEnhance", "ColorProfile", "Contrast", "Sharpen", "Quantize"}
	if len(names) != len(markers) {
		t.Fatalf("expected %d steps, got %v", len(markers), names)
	}
	for i, marker := range markers {
		if !strings.Contains(names[i], marker) {
			t.Fatalf("step %d = %q, want %s (full: %v)", i, names[i], marker, names)
		}
	}
}

func TestQuantizeOnlyForLimitedPalettes(t *testing.T) {
	for id, spec := range All() {
		names := strings.Join(Synthesize(spec).StepNames(), " ")
		hasQuantize := strings.Contains(names, "Quantize")

		if spec.BitDepth < 16 && !hasQuantize {
			t.Errorf("%s (bit depth %d) should quantize", id, spec.BitDepth)
		}
		if spec.BitDepth >= 16 && hasQuantize {
			t.Errorf("%s (bit depth %d) should not quantize", id, spec.BitDepth)
		}
	}
}

func TestEInkGetsStrongerContrast(t *testing.T) {
	eink, err := Lookup("kindle_paperwhite_12")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	tablet, err := Lookup("ipad_pro_11")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}

	einkNames := strings.Join(Synthesize(eink).StepNames(), " ")
	tabletNames := strings.Join(Synthesize(tablet).StepNames(), " ")

	if !strings.Contains(einkNames, "Contrast(1.6)") {
		t.Fatalf("B&W e-ink should use contrast 1.6, got %s", einkNames)
	}
	if !strings.Contains(tabletNames, "Contrast(1.2)") {
		t.Fatalf("full-color display should use contrast 1.2, got %s", tabletNames)
	}
}

func TestDevicePipelineEndsResolved(t *testing.T) {
	spec, err := Lookup("kobo_clara_bw")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}

	names := spec.Pipeline().StepNames()
	resizes := 0
	for _, n := range names {
		if strings.Contains(n, "Resize") {
			resizes++
		}
	}
	if resizes != 1 {
		t.Fatalf("expected exactly one resize step, got %v", names)
	}
}
