package progress

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/trebuchet-org/sling/internal/usecase"
)

func TestSpinnerProgressReporter(t *testing.T) {
	var buf bytes.Buffer
	r := newSpinnerProgressReporter(&buf)
	ctx := context.Background()

	r.OnProgress(ctx, usecase.ProgressEvent{Stage: usecase.StageLoading, Message: "Loading artifact IfElse", Spinner: true})
	r.OnProgress(ctx, usecase.ProgressEvent{Stage: usecase.StageDeploying, Message: "Deploying IfElse", Spinner: true})
	r.OnProgress(ctx, usecase.ProgressEvent{Stage: usecase.StageDeployed, Message: "IfElse deployed at 0xabc"})
	r.Info("hello")
	r.Stop()

	out := buf.String()
	assert.Contains(t, out, "✓ IfElse deployed at 0xabc (")
	assert.Contains(t, out, "hello\n")
	assert.False(t, r.spinner.Active())
}

func TestSpinnerProgressReporter_ErrorStopsSpinner(t *testing.T) {
	var buf bytes.Buffer
	r := newSpinnerProgressReporter(&buf)

	r.OnProgress(context.Background(), usecase.ProgressEvent{Stage: usecase.StageCalling, Message: "Calling check()", Spinner: true})
	assert.True(t, r.spinner.Active())

	r.Error("check() failed")
	assert.False(t, r.spinner.Active())
	assert.Contains(t, buf.String(), "✗ check() failed\n")
}

func TestSpinnerProgressReporter_StopIsIdempotent(t *testing.T) {
	r := newSpinnerProgressReporter(&bytes.Buffer{})
	r.Stop()

	r.OnProgress(context.Background(), usecase.ProgressEvent{Stage: usecase.StageMining, Message: "Waiting", Spinner: true})
	r.Stop()
	r.Stop()
	assert.False(t, r.spinner.Active())
}

func TestNopSink(t *testing.T) {
	sink := NewNopSink()
	sink.OnProgress(context.Background(), usecase.ProgressEvent{Stage: usecase.StageDone})
	sink.Info("ignored")
	sink.Error("ignored")
}
