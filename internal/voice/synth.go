package voice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os/exec"
	"runtime"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	beepwav "github.com/faiface/beep/wav"

	"github.com/rohan/vaani/pkg/config"
)

// Speaker turns response text into audio via a Kokoro-compatible
// /v1/audio/speech endpoint and plays it on the default output device.
type Speaker struct {
	URL   string
	Voice string
	Speed float64
	HTTP  *http.Client
}

func NewSpeaker(cfg config.SpeechConfig) *Speaker {
	return &Speaker{
		URL:   cfg.KokoroURL,
		Voice: cfg.Speaker,
		Speed: cfg.Speed,
		HTTP: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// Synthesize returns WAV audio for text.
func (s *Speaker) Synthesize(ctx context.Context, text string) ([]byte, error) {
	payload, err := json.Marshal(map[string]any{
		"model":           "kokoro",
		"input":           text,
		"voice":           s.Voice,
		"speed":           s.Speed,
		"response_format": "wav",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode speech request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.URL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("speech request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("speech synthesis failed: status code %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("synthesis produced no audio")
	}
	return data, nil
}

var speakerInit sync.Once

// audioBuffer adapts an in-memory clip to the reader beep decodes from.
type audioBuffer struct{ *bytes.Reader }

func (audioBuffer) Close() error { return nil }

// Play decodes and plays a WAV clip, blocking until playback finishes.
func Play(data []byte) error {
	streamer, format, err := beepwav.Decode(audioBuffer{bytes.NewReader(data)})
	if err != nil {
		return fmt.Errorf("failed to decode audio: %w", err)
	}
	defer streamer.Close()

	var initErr error
	speakerInit.Do(func() {
		initErr = speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10))
	})
	if initErr != nil {
		return fmt.Errorf("failed to open output device: %w", initErr)
	}

	done := make(chan bool)
	speaker.Play(beep.Seq(streamer, beep.Callback(func() {
		done <- true
	})))
	<-done
	return nil
}

// SayFallback shells out to the platform speech command when synthesis or
// playback is unavailable, so the assistant is never silently mute.
func SayFallback(text string) error {
	name := "espeak"
	if runtime.GOOS == "darwin" {
		name = "say"
	}
	if _, err := exec.LookPath(name); err != nil {
		return fmt.Errorf("no speech command available: %w", err)
	}
	return exec.Command(name, text).Run()
}
