package pipeline

import (
	"strings"
	"testing"
)

func namesOf(steps []Step) []string {
	names := make([]string, len(steps))
	for i, s := range steps {
		names[i] = s.Name()
	}
	return names
}

func TestInsertResizeBetweenPreAndPostSteps(t *testing.T) {
	var calls []string
	steps := []Step{
		&recordStep{name: "SmartCrop", log: &calls},
		&recordStep{name: "AutoRotate", log: &calls},
		&recordStep{name: "TextEnhance(s=1.5)", log: &calls},
		&recordStep{name: "Contrast(1.5)", log: &calls},
		&recordStep{name: "Sharpen(1.2)", log: &calls},
	}

	out := InsertResize(steps, Resolution{Width: 100, Height: 200})
	names := namesOf(out)

	if len(names) != 6 {
		t.Fatalf("expected 6 steps, got %v", names)
	}
	if !strings.Contains(names[3], "Resize") {
		t.Fatalf("resize should sit at index 3, got %v", names)
	}
}

func TestInsertResizeAppendsWhenAllPreSize(t *testing.T) {
	var calls []string
	steps := []Step{
		&recordStep{name: "SmartCrop", log: &calls},
		&recordStep{name: "AutoRotate", log: &calls},
	}

	out := InsertResize(steps, Resolution{Width: 100, Height: 200})
	names := namesOf(out)

	if len(names) != 3 || !strings.Contains(names[2], "Resize") {
		t.Fatalf("resize should be appended, got %v", names)
	}
}

func TestInsertResizeDropsExistingResize(t *testing.T) {
	var calls []string
	steps := []Step{
		&recordStep{name: "SmartCrop", log: &calls},
		NewResizeStep(Resolution{Width: 50, Height: 50}),
		&recordStep{name: "Contrast(1.5)", log: &calls},
	}

	out := InsertResize(steps, Resolution{Width: 100, Height: 200})

	resizes := 0
	for _, name := range namesOf(out) {
		if strings.Contains(name, "Resize") {
			resizes++
		}
	}
	if resizes != 1 {
		t.Fatalf("expected exactly one resize step, got %v", namesOf(out))
	}
	if !strings.Contains(out[1].Name(), "100x200") {
		t.Fatalf("surviving resize should target the new resolution, got %v", namesOf(out))
	}
}

func TestInsertResizeIntoEmptyList(t *testing.T) {
	out := InsertResize(nil, Resolution{Width: 100, Height: 200})
	if len(out) != 1 || !strings.Contains(out[0].Name(), "Resize") {
		t.Fatalf("expected a lone resize step, got %v", namesOf(out))
	}
}

func TestProcessedOutputMatchesTargetExactly(t *testing.T) {
	target := Resolution{Width: 120, Height: 160}

	inputs := map[string][2]int{
		"square":         {80, 80},
		"tall":           {20, 400},
		"wide":           {400, 20},
		"already target": {120, 160},
	}

	for name, dims := range inputs {
		p, err := Preset("kindle")
		if err != nil {
			t.Fatalf("preset: %v", err)
		}
		p.WithResize(target)

		out, err := p.Process(whiteImage(dims[0], dims[1]))
		if err != nil {
			t.Fatalf("%s: process: %v", name, err)
		}

		b := out.Bounds()
		if b.Dx() != target.Width || b.Dy() != target.Height {
			t.Fatalf("%s: got %dx%d, want %s", name, b.Dx(), b.Dy(), target)
		}
	}
}
