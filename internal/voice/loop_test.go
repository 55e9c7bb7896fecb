package voice

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rohan/vaani/internal/observability"
	"github.com/rohan/vaani/internal/workflow"
)

type failingCapturer struct {
	calls int
}

func (f *failingCapturer) Record(stop <-chan struct{}) ([]int16, error) {
	f.calls++
	return nil, errors.New("no input device")
}

func TestLoop_CaptureFailureKeepsKeypressParity(t *testing.T) {
	capture := &failingCapturer{}
	var out bytes.Buffer
	l := &Loop{
		Registry: workflow.NewRegistry(nil, observability.NewLogger()),
		Recorder: capture,
		Logger:   observability.NewLogger(),
		// Four Enters: two full start/stop pairs, then EOF.
		In:  strings.NewReader("\n\n\n\n"),
		Out: &out,
	}

	if err := l.Start(context.Background()); err == nil {
		t.Fatal("Expected the loop to end with the input error at EOF")
	}

	if capture.calls != 2 {
		t.Errorf("Four Enters should drive exactly two recordings, got %d", capture.calls)
	}

	got := out.String()
	if n := strings.Count(got, "Audio capture failed."); n != 2 {
		t.Errorf("Expected 2 capture failure messages, got %d:\n%s", n, got)
	}
	// Each turn consumes its stopping Enter even when capture fails, so
	// the loop prompts once per remaining pair plus once at EOF.
	if n := strings.Count(got, "Press Enter to start recording..."); n != 3 {
		t.Errorf("Prompt count off, keypresses desynchronized, got %d:\n%s", n, got)
	}
}
