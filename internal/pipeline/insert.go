package pipeline

import "strings"

// Step names containing any of these substrings operate on
// original-resolution pixels and must stay ahead of the resize step.
// Classification is by substring match on the step name; a custom step
// whose name happens to contain one of these markers is treated as
// pre-size.
var preSizeMarkers = []string{"Crop", "Rotate", "TextEnhance", "Resize"}

func isPreSize(name string) bool {
	for _, marker := range preSizeMarkers {
		if strings.Contains(name, marker) {
			return true
		}
	}
	return false
}

func isResize(name string) bool {
	return strings.Contains(name, "Resize")
}

// InsertResize places a size-normalizing step for target into the step
// list: immediately before the first post-size step, or at the end when
// every step is pre-size. Any pre-existing resize step is dropped, so the
// result always contains exactly one.
//
// Crop, rotation, and text enhancement need original-resolution pixels
// for accurate content-boundary detection; palette reduction and
// sharpening need the exact pixel grid the device will display.
func InsertResize(steps []Step, target Resolution) []Step {
	resize := NewResizeStep(target)
	out := make([]Step, 0, len(steps)+1)
	inserted := false

	for _, s := range steps {
		if isResize(s.Name()) {
			continue
		}
		if !inserted && !isPreSize(s.Name()) {
			out = append(out, resize)
			inserted = true
		}
		out = append(out, s)
	}
	if !inserted {
		out = append(out, resize)
	}
	return out
}

// WithResize rebuilds the pipeline's step list through InsertResize.
// Build-time only.
func (p *Pipeline) WithResize(target Resolution) *Pipeline {
	p.steps = InsertResize(p.steps, target)
	return p
}
