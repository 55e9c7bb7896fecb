package voice

import (
	"fmt"

	"github.com/gordonklaus/portaudio"
)

const (
	// SampleRate is what the transcription model expects: 16 kHz mono.
	SampleRate = 16000
	channels   = 1
	frameSize  = 512

	// minSamples discards clips shorter than ~0.3s, which are almost
	// always an accidental double press.
	minSamples = SampleRate * 3 / 10
)

// Recorder captures push-to-talk clips from the default input device.
type Recorder struct{}

func NewRecorder() *Recorder {
	return &Recorder{}
}

// Record captures 16-bit mono PCM until stop is closed. The caller owns
// the stop signal; this just drains the stream into memory.
func (r *Recorder) Record(stop <-chan struct{}) ([]int16, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize audio: %w", err)
	}
	defer portaudio.Terminate()

	in := make([]int16, frameSize)
	stream, err := portaudio.OpenDefaultStream(channels, 0, float64(SampleRate), len(in), &in)
	if err != nil {
		return nil, fmt.Errorf("failed to open input stream: %w", err)
	}
	defer stream.Close()

	if err := stream.Start(); err != nil {
		return nil, fmt.Errorf("failed to start input stream: %w", err)
	}
	defer stream.Stop()

	var samples []int16
	for {
		select {
		case <-stop:
			return samples, nil
		default:
		}

		if err := stream.Read(); err != nil {
			// Overflows happen when the loop falls behind; drop the
			// frame and keep capturing.
			continue
		}
		samples = append(samples, in...)
	}
}

// TooShort reports whether a clip is below the minimum usable length.
func TooShort(samples []int16) bool {
	return len(samples) < minSamples
}
