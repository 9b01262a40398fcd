// Package pipeline implements the ordered, composable image-transform
// pipeline: the Step contract, preset and device-driven construction, and
// the individual transform steps.
package pipeline

import (
	"fmt"
	"image"
	"strings"
)

// Step is a single configured image transform. Implementations are
// immutable after construction and safe for concurrent use; Apply must not
// retain or mutate its input.
type Step interface {
	Name() string
	Apply(img image.Image) (image.Image, error)
}

// Pipeline is an ordered sequence of Steps. Mutation methods are
// build-time only; once a pipeline is handed to workers it is read-only.
type Pipeline struct {
	steps []Step
}

// New builds a pipeline from the given steps, in order.
func New(steps ...Step) *Pipeline {
	return &Pipeline{steps: steps}
}

// AddStep appends a step. Returns the pipeline for chaining.
func (p *Pipeline) AddStep(s Step) *Pipeline {
	p.steps = append(p.steps, s)
	return p
}

// RemoveStep removes the first step whose name equals name.
func (p *Pipeline) RemoveStep(name string) *Pipeline {
	for i, s := range p.steps {
		if s.Name() == name {
			p.steps = append(p.steps[:i], p.steps[i+1:]...)
			break
		}
	}
	return p
}

// Clear removes all steps.
func (p *Pipeline) Clear() *Pipeline {
	p.steps = nil
	return p
}

// Len returns the number of steps.
func (p *Pipeline) Len() int {
	return len(p.steps)
}

// StepNames returns the names of all steps in order.
func (p *Pipeline) StepNames() []string {
	names := make([]string, len(p.steps))
	for i, s := range p.steps {
		names[i] = s.Name()
	}
	return names
}

// Process folds img through all steps strictly left to right. A step
// failure aborts the fold and is wrapped with the step's name.
func (p *Pipeline) Process(img image.Image) (image.Image, error) {
	result := img
	for _, s := range p.steps {
		var err error
		result, err = s.Apply(result)
		if err != nil {
			return nil, fmt.Errorf("step %s: %w", s.Name(), err)
		}
	}
	return result, nil
}

func (p *Pipeline) String() string {
	if len(p.steps) == 0 {
		return "Pipeline(empty)"
	}
	return "Pipeline(" + strings.Join(p.StepNames(), " -> ") + ")"
}
