package cmd

import (
	"os"
	"time"

	"spade/cli/internal/pipeline"
	"spade/cli/internal/terminal"

	"atomicgo.dev/cursor"
)

const spinnerInterval = 100 * time.Millisecond

// buildProgress returns a spinner hook for the build step, or nil when f is not a terminal
// or the child output is passed through to it.
func buildProgress(f *os.File, passthrough bool) pipeline.Progress {
	if passthrough || !terminal.IsInteractive(f) {
		return nil
	}
	return func(label string) func() {
		cursor.Hide()
		stop := terminal.StartSpinner(f, label, terminal.SpinnerFrames, spinnerInterval, terminal.Width(f)-1)
		return func() {
			stop()
			cursor.Show()
		}
	}
}
