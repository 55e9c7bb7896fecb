package voice

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rohan/vaani/internal/observability"
	"github.com/rohan/vaani/internal/workflow"
)

// Capturer yields one push-to-talk clip per call, draining the input
// device until stop is closed.
type Capturer interface {
	Record(stop <-chan struct{}) ([]int16, error)
}

// Loop is the voice conversation surface: push-to-talk capture, transcribe,
// dispatch, speak, repeat. One utterance is processed end-to-end before the
// next is accepted.
type Loop struct {
	Registry    *workflow.Registry
	Recorder    Capturer
	Transcriber *Transcriber
	Speaker     *Speaker
	Logger      *observability.Logger
	In          io.Reader
	Out         io.Writer
}

func NewLoop(registry *workflow.Registry, transcriber *Transcriber, speaker *Speaker, logger *observability.Logger) *Loop {
	return &Loop{
		Registry:    registry,
		Recorder:    NewRecorder(),
		Transcriber: transcriber,
		Speaker:     speaker,
		Logger:      logger,
		In:          os.Stdin,
		Out:         os.Stdout,
	}
}

func (l *Loop) Start(ctx context.Context) error {
	fmt.Fprintln(l.Out, "Voice assistant ready. Ctrl+C to quit.")

	reader := bufio.NewReader(l.In)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		fmt.Fprintln(l.Out, "Press Enter to start recording...")
		if _, err := reader.ReadString('\n'); err != nil {
			return err
		}

		fmt.Fprintln(l.Out, "Recording... press Enter again to stop.")
		stop := make(chan struct{})
		stopped := make(chan struct{})
		go func() {
			reader.ReadString('\n')
			close(stop)
			close(stopped)
		}()

		samples, err := l.Recorder.Record(stop)
		// The goroutine owns the reader until the stopping Enter arrives.
		// Wait for it even when capture fails early, or it would swallow
		// the keypress meant to start the next recording.
		<-stopped
		if err != nil {
			l.Logger.LogError("record", err)
			fmt.Fprintln(l.Out, "Audio capture failed.")
			continue
		}
		if TooShort(samples) {
			fmt.Fprintln(l.Out, "No audio captured.")
			continue
		}

		text, err := l.transcribeClip(ctx, samples)
		if err != nil {
			l.Logger.LogError("transcribe", err)
			l.speak("I'm having trouble hearing you right now.")
			continue
		}
		if text == "" {
			l.speak("I didn't catch that.")
			continue
		}
		l.Logger.LogTranscript(text)
		fmt.Fprintf(l.Out, "You: %s\n", text)

		_, response := l.Registry.Dispatch(ctx, text)
		fmt.Fprintf(l.Out, "Assistant: %s\n", response)
		l.speak(response)
	}
}

func (l *Loop) Stop() error {
	return nil
}

func (l *Loop) transcribeClip(ctx context.Context, samples []int16) (string, error) {
	dir, err := os.MkdirTemp("", "vaani-clip")
	if err != nil {
		return "", fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "clip.wav")
	if err := WriteWAV(path, samples); err != nil {
		return "", err
	}
	return l.Transcriber.Transcribe(ctx, path)
}

// speak synthesizes and plays text, degrading to the platform speech
// command rather than failing the turn.
func (l *Loop) speak(text string) {
	if text == "" {
		return
	}
	l.Logger.LogSpeech(text)

	data, err := l.Speaker.Synthesize(context.Background(), text)
	if err == nil {
		if err := Play(data); err == nil {
			return
		}
		l.Logger.LogError("playback", err)
	} else {
		l.Logger.LogError("synthesize", err)
	}

	if err := SayFallback(text); err != nil {
		l.Logger.LogError("speech-fallback", err)
	}
}
