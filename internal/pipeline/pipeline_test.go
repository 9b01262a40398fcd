package pipeline

import (
	"errors"
	"image"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
)

// recordStep notes the order steps were invoked in.
type recordStep struct {
	name string
	log  *[]string
	fail error
}

func (s *recordStep) Name() string { return s.name }

func (s *recordStep) Apply(img image.Image) (image.Image, error) {
	*s.log = append(*s.log, s.name)
	if s.fail != nil {
		return nil, s.fail
	}
	return img, nil
}

func whiteImage(w, h int) image.Image {
	return imaging.New(w, h, image.White)
}

func TestProcessRunsStepsInOrder(t *testing.T) {
	var calls []string
	p := New(
		&recordStep{name: "First", log: &calls},
		&recordStep{name: "Second", log: &calls},
		&recordStep{name: "Third", log: &calls},
	)

	if _, err := p.Process(whiteImage(10, 10)); err != nil {
		t.Fatalf("process: %v", err)
	}

	want := []string{"First", "Second", "Third"}
	if len(calls) != len(want) {
		t.Fatalf("expected %d calls, got %v", len(want), calls)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Fatalf("call order %v, want %v", calls, want)
		}
	}
}

func TestProcessWrapsStepFailure(t *testing.T) {
	var calls []string
	boom := errors.New("boom")
	p := New(
		&recordStep{name: "Ok", log: &calls},
		&recordStep{name: "Broken", log: &calls, fail: boom},
		&recordStep{name: "Never", log: &calls},
	)

	_, err := p.Process(whiteImage(10, 10))
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped boom, got %v", err)
	}
	if !strings.Contains(err.Error(), "Broken") {
		t.Fatalf("error should name the failing step: %v", err)
	}
	for _, c := range calls {
		if c == "Never" {
			t.Fatal("steps after a failure must not run")
		}
	}
}

func TestRemoveStepFirstMatchOnly(t *testing.T) {
	var calls []string
	p := New(
		&recordStep{name: "Dup", log: &calls},
		&recordStep{name: "Other", log: &calls},
		&recordStep{name: "Dup", log: &calls},
	)

	p.RemoveStep("Dup")

	names := p.StepNames()
	if len(names) != 2 || names[0] != "Other" || names[1] != "Dup" {
		t.Fatalf("expected [Other Dup], got %v", names)
	}
}

func TestClearAndLen(t *testing.T) {
	var calls []string
	p := New(&recordStep{name: "A", log: &calls})
	if p.Len() != 1 {
		t.Fatalf("len = %d, want 1", p.Len())
	}
	p.Clear()
	if p.Len() != 0 {
		t.Fatalf("len after clear = %d, want 0", p.Len())
	}
}
