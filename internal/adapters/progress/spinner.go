package progress

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/trebuchet-org/sling/internal/usecase"
)

// SpinnerProgressReporter shows a spinner on stderr while the harness waits on the network
type SpinnerProgressReporter struct {
	spinner     *spinner.Spinner
	out         io.Writer
	deployStart time.Time
}

// NewSpinnerProgressReporter creates a new spinner-based progress reporter
func NewSpinnerProgressReporter() *SpinnerProgressReporter {
	return newSpinnerProgressReporter(os.Stderr)
}

func newSpinnerProgressReporter(out io.Writer) *SpinnerProgressReporter {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(out))
	s.HideCursor = false

	return &SpinnerProgressReporter{
		spinner: s,
		out:     out,
	}
}

// OnProgress handles progress events
func (r *SpinnerProgressReporter) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	if event.Stage == usecase.StageLoading {
		r.deployStart = time.Now()
	}

	if event.Spinner {
		if !r.spinner.Active() {
			r.spinner.Start()
		}
		r.spinner.Suffix = " " + event.Message
		return
	}

	if r.spinner.Active() {
		r.spinner.Stop()
	}

	if event.Stage == usecase.StageDeployed && event.Message != "" {
		color.New(color.FgGreen).Fprintf(r.out, "✓ %s (%s)\n", event.Message, time.Since(r.deployStart).Round(time.Millisecond))
	}
}

// Info prints an info message
func (r *SpinnerProgressReporter) Info(message string) {
	r.pause(func() {
		color.New(color.FgCyan).Fprintln(r.out, message)
	})
}

// Error stops the spinner and marks the current step as failed
func (r *SpinnerProgressReporter) Error(message string) {
	r.Stop()
	color.New(color.FgRed).Fprintf(r.out, "✗ %s\n", message)
}

// pause stops the spinner while fn prints, then restarts it
func (r *SpinnerProgressReporter) pause(fn func()) {
	wasActive := r.spinner.Active()
	if wasActive {
		r.spinner.Stop()
	}

	fn()

	if wasActive {
		r.spinner.Start()
	}
}

// Stop halts the spinner if it is running
func (r *SpinnerProgressReporter) Stop() {
	if r.spinner.Active() {
		r.spinner.Stop()
	}
}

// Ensure SpinnerProgressReporter implements ProgressSink
var _ usecase.ProgressSink = (*SpinnerProgressReporter)(nil)
