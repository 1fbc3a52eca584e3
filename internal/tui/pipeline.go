// Package tui renders live pipeline progress for the all subcommand:
// one line per step with a spinner on the running step and a final
// status glyph on completed ones.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ocsdev/internal/pipeline"
)

type stepState int

const (
	statePending stepState = iota
	stateRunning
	stateOK
	stateFailed
	stateSkipped
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	runningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	dimStyle     = lipgloss.NewStyle().Faint(true)
)

// StepStartedMsg marks a step as running.
type StepStartedMsg struct {
	Name string
}

// StepFinishedMsg records a step outcome.
type StepFinishedMsg struct {
	Status pipeline.StepStatus
}

// PipelineDoneMsg ends the program once the pipeline settles.
type PipelineDoneMsg struct {
	Result pipeline.Result
}

// Model is the bubbletea model for a pipeline run.
type Model struct {
	title   string
	steps   []string
	states  map[string]stepState
	errs    map[string]string
	spinner spinner.Model
	result  *pipeline.Result
	done    bool
}

// NewModel creates a model showing the named steps in order.
func NewModel(title string, steps []string) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = runningStyle

	states := make(map[string]stepState, len(steps))
	for _, name := range steps {
		states[name] = statePending
	}

	return Model{
		title:   title,
		steps:   steps,
		states:  states,
		errs:    make(map[string]string),
		spinner: s,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m, nil

	case StepStartedMsg:
		m.states[msg.Name] = stateRunning
		return m, nil

	case StepFinishedMsg:
		switch {
		case msg.Status.Skipped:
			m.states[msg.Status.Name] = stateSkipped
		case msg.Status.Err != nil:
			m.states[msg.Status.Name] = stateFailed
			m.errs[msg.Status.Name] = msg.Status.Err.Error()
		default:
			m.states[msg.Status.Name] = stateOK
		}
		return m, nil

	case PipelineDoneMsg:
		m.done = true
		m.result = &msg.Result
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("🚀 "+m.title) + "\n\n")

	for _, name := range m.steps {
		switch m.states[name] {
		case stateRunning:
			fmt.Fprintf(&b, " %s %s\n", m.spinner.View(), runningStyle.Render(name))
		case stateOK:
			fmt.Fprintf(&b, " %s %s\n", okStyle.Render("✅"), name)
		case stateFailed:
			fmt.Fprintf(&b, " %s %s: %s\n", failStyle.Render("❌"), name, failStyle.Render(m.errs[name]))
		case stateSkipped:
			fmt.Fprintf(&b, " %s %s\n", dimStyle.Render("⏭️"), dimStyle.Render(name+" (skipped)"))
		default:
			fmt.Fprintf(&b, "   %s\n", dimStyle.Render(name))
		}
	}

	if m.done && m.result != nil {
		if m.result.OK() {
			b.WriteString("\n" + okStyle.Render("🎉 Pipeline completed successfully") + "\n")
		} else {
			b.WriteString("\n" + failStyle.Render("Pipeline failed at: "+m.result.FailedStep) + "\n")
		}
	}
	return b.String()
}

// ProgramObserver bridges pipeline notifications into a running
// bubbletea program.
type ProgramObserver struct {
	Program *tea.Program
}

// StepStarted implements pipeline.Observer.
func (o *ProgramObserver) StepStarted(name string) {
	o.Program.Send(StepStartedMsg{Name: name})
}

// StepFinished implements pipeline.Observer.
func (o *ProgramObserver) StepFinished(status pipeline.StepStatus) {
	o.Program.Send(StepFinishedMsg{Status: status})
}
