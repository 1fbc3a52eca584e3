// Package pipeline runs a fixed, ordered list of named build steps.
// Each step is a context-aware operation that either succeeds or fails;
// the first failure aborts the remaining steps. There are no retries and
// no rollback: side effects of completed steps stay in place.
package pipeline

import (
	"context"
	"time"
)

// Step is a single named unit of work.
type Step struct {
	Name string
	Run  func(ctx context.Context) error
}

// StepStatus records the outcome of one step.
type StepStatus struct {
	Name     string
	Err      error
	Duration time.Duration
	Skipped  bool
}

// Result is the outcome of a pipeline run.
type Result struct {
	Steps      []StepStatus
	FailedStep string // empty when every step succeeded
	Duration   time.Duration
}

// OK reports whether every step completed successfully.
func (r Result) OK() bool {
	return r.FailedStep == ""
}

// Observer receives step lifecycle notifications. Used by the console
// and TUI reporters; a nil observer is valid.
type Observer interface {
	StepStarted(name string)
	StepFinished(status StepStatus)
}

// Sequencer executes steps top-to-bottom with short-circuit on failure.
type Sequencer struct {
	steps    []Step
	observer Observer
}

// New creates a sequencer over the given steps.
func New(steps ...Step) *Sequencer {
	return &Sequencer{steps: steps}
}

// WithObserver attaches an observer and returns the sequencer.
func (s *Sequencer) WithObserver(o Observer) *Sequencer {
	s.observer = o
	return s
}

// Steps returns the names of the configured steps in execution order.
func (s *Sequencer) Steps() []string {
	names := make([]string, len(s.steps))
	for i, step := range s.steps {
		names[i] = step.Name
	}
	return names
}

// Run executes the steps in order. On the first failing step the
// remaining steps are recorded as skipped and never invoked. A
// cancelled context fails the next step before it starts; the rest
// are skipped the same way.
func (s *Sequencer) Run(ctx context.Context) Result {
	start := time.Now()
	result := Result{Steps: make([]StepStatus, 0, len(s.steps))}

	for i, step := range s.steps {
		stepStart := time.Now()
		err := ctx.Err()
		if err == nil {
			if s.observer != nil {
				s.observer.StepStarted(step.Name)
			}
			err = step.Run(ctx)
		}
		status := StepStatus{
			Name:     step.Name,
			Err:      err,
			Duration: time.Since(stepStart),
		}
		result.Steps = append(result.Steps, status)

		if s.observer != nil {
			s.observer.StepFinished(status)
		}

		if err != nil {
			result.FailedStep = step.Name
			for _, remaining := range s.steps[i+1:] {
				skipped := StepStatus{Name: remaining.Name, Skipped: true}
				result.Steps = append(result.Steps, skipped)
				if s.observer != nil {
					s.observer.StepFinished(skipped)
				}
			}
			break
		}
	}

	result.Duration = time.Since(start)
	return result
}
