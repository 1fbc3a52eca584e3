// Package reporting prints build progress to the terminal: styled step
// headers, success/warning/error lines, and the pipeline summary table.
package reporting

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"ocsdev/internal/pipeline"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Console writes formatted progress output for the build commands.
type Console struct {
	out io.Writer
}

// NewConsole creates a console reporter writing to out.
func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

// Header prints the banner line shown at command start.
func (c *Console) Header(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(c.out, "%s\n%s\n", headerStyle.Render("🚀 "+msg), headerStyle.Render(strings.Repeat("=", runewidth.StringWidth(msg)+3)))
}

// Step prints a build step announcement.
func (c *Console) Step(format string, args ...interface{}) {
	fmt.Fprintf(c.out, "\n%s\n", stepStyle.Render("🔨 "+fmt.Sprintf(format, args...)))
}

// Success prints a success message.
func (c *Console) Success(format string, args ...interface{}) {
	fmt.Fprintf(c.out, "%s\n", successStyle.Render("✅ "+fmt.Sprintf(format, args...)))
}

// Warning prints a warning message.
func (c *Console) Warning(format string, args ...interface{}) {
	fmt.Fprintf(c.out, "%s\n", warningStyle.Render("⚠️  "+fmt.Sprintf(format, args...)))
}

// Error prints an error message.
func (c *Console) Error(format string, args ...interface{}) {
	fmt.Fprintf(c.out, "%s\n", errorStyle.Render("❌ "+fmt.Sprintf(format, args...)))
}

// Info prints an unstyled informational line.
func (c *Console) Info(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format+"\n", args...)
}

// StepStarted implements pipeline.Observer.
func (c *Console) StepStarted(name string) {
	c.Step("%s", name)
}

// StepFinished implements pipeline.Observer.
func (c *Console) StepFinished(status pipeline.StepStatus) {
	switch {
	case status.Skipped:
		// Summarized at the end; skipped steps produce no live output.
	case status.Err != nil:
		c.Error("%s failed: %v", status.Name, status.Err)
	default:
		c.Success("%s completed successfully (%s)", status.Name, status.Duration.Round(time.Millisecond))
	}
}

// Summary prints the per-step outcome table after a pipeline run.
func (c *Console) Summary(result pipeline.Result) {
	nameWidth := 0
	for _, status := range result.Steps {
		if w := runewidth.StringWidth(status.Name); w > nameWidth {
			nameWidth = w
		}
	}

	fmt.Fprintf(c.out, "\n")
	for _, status := range result.Steps {
		padded := status.Name + strings.Repeat(" ", nameWidth-runewidth.StringWidth(status.Name))
		switch {
		case status.Skipped:
			fmt.Fprintf(c.out, "   ⏭️  %s  skipped\n", padded)
		case status.Err != nil:
			fmt.Fprintf(c.out, "   ❌ %s  failed (%s)\n", padded, status.Duration.Round(time.Millisecond))
		default:
			fmt.Fprintf(c.out, "   ✅ %s  ok (%s)\n", padded, status.Duration.Round(time.Millisecond))
		}
	}

	if result.OK() {
		c.Success("🎉 Complete build pipeline completed successfully! (%s)", result.Duration.Round(time.Millisecond))
	} else {
		c.Error("Build pipeline failed at: %s", result.FailedStep)
	}
}
