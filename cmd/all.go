package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"ocsdev/internal/pipeline"
	"ocsdev/internal/tui"
)

var allTUI bool

// allCmd represents the all command
var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Run the complete build pipeline",
	Long: `All runs the complete pipeline in order: install, test, lint,
build. The pipeline stops at the first failing step and reports the
remaining steps as skipped; the summary table shows the outcome and
duration of every step.

With --tui the pipeline renders as a live view instead of plain
step-by-step output.`,
	RunE: runAll,
}

func init() {
	rootCmd.AddCommand(allCmd)
	allCmd.Flags().BoolVar(&allTUI, "tui", false, "Render pipeline progress as a live terminal view")
}

func runAll(cmd *cobra.Command, args []string) error {
	env, err := newCommandEnv()
	if err != nil {
		return err
	}

	// Handle interrupts gracefully: a cancelled context stops the
	// running step and marks the rest skipped.
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		<-sigChan
		cancel()
	}()

	seq := env.orc.Pipeline()

	var result pipeline.Result
	if allTUI {
		result, err = runAllTUI(ctx, cancel, seq)
		if err != nil {
			return err
		}
	} else {
		env.console.Header("Complete build pipeline for %s", env.cfg.Build.Binary)
		result = seq.WithObserver(env.console).Run(ctx)
		env.console.Summary(result)
	}

	if !result.OK() {
		return fmt.Errorf("pipeline failed at step %q", result.FailedStep)
	}
	return nil
}

func runAllTUI(ctx context.Context, cancel context.CancelFunc, seq *pipeline.Sequencer) (pipeline.Result, error) {
	model := tui.NewModel("Complete build pipeline", seq.Steps())
	program := tea.NewProgram(model)

	done := make(chan pipeline.Result, 1)
	go func() {
		result := seq.WithObserver(&tui.ProgramObserver{Program: program}).Run(ctx)
		done <- result
		program.Send(tui.PipelineDoneMsg{Result: result})
	}()

	// Bubbletea owns the terminal, so ctrl+c arrives as a key message
	// and quits the program rather than signalling the process. Cancel
	// the pipeline when the view exits so the steps stop with it.
	_, runErr := program.Run()
	cancel()
	result := <-done
	if runErr != nil {
		return result, fmt.Errorf("pipeline view failed: %w", runErr)
	}
	return result, nil
}
