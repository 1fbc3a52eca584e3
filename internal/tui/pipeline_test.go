package tui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"ocsdev/internal/pipeline"
)

func TestModelStepTransitions(t *testing.T) {
	m := NewModel("Build", []string{"install", "test"})

	next, _ := m.Update(StepStartedMsg{Name: "install"})
	m = next.(Model)
	assert.Equal(t, stateRunning, m.states["install"])
	assert.Equal(t, statePending, m.states["test"])

	next, _ = m.Update(StepFinishedMsg{Status: pipeline.StepStatus{Name: "install"}})
	m = next.(Model)
	assert.Equal(t, stateOK, m.states["install"])

	next, _ = m.Update(StepFinishedMsg{Status: pipeline.StepStatus{Name: "test", Err: errors.New("boom")}})
	m = next.(Model)
	assert.Equal(t, stateFailed, m.states["test"])
	assert.Contains(t, m.View(), "boom")
}

func TestModelSkippedStep(t *testing.T) {
	m := NewModel("Build", []string{"lint"})

	next, _ := m.Update(StepFinishedMsg{Status: pipeline.StepStatus{Name: "lint", Skipped: true}})
	m = next.(Model)
	assert.Equal(t, stateSkipped, m.states["lint"])
	assert.Contains(t, m.View(), "skipped")
}

func TestModelDoneRendersSummary(t *testing.T) {
	m := NewModel("Build", []string{"install"})

	next, _ := m.Update(StepFinishedMsg{Status: pipeline.StepStatus{Name: "install"}})
	m = next.(Model)
	next, _ = m.Update(PipelineDoneMsg{Result: pipeline.Result{Steps: []pipeline.StepStatus{{Name: "install"}}}})
	m = next.(Model)

	assert.True(t, m.done)
	assert.Contains(t, m.View(), "successfully")
}

func TestModelFailureSummaryNamesStep(t *testing.T) {
	m := NewModel("Build", []string{"test"})

	next, _ := m.Update(PipelineDoneMsg{Result: pipeline.Result{FailedStep: "test"}})
	m = next.(Model)

	assert.Contains(t, m.View(), "failed at: test")
}
