package voice

import (
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// WriteWAV writes 16-bit mono PCM to path as a WAV file.
func WriteWAV(path string, samples []int16) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create wav file: %w", err)
	}

	encoder := wav.NewEncoder(f, SampleRate, 16, channels, 1)

	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: SampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}

	if err := encoder.Write(buf); err != nil {
		encoder.Close()
		f.Close()
		return fmt.Errorf("failed to write wav data: %w", err)
	}
	if err := encoder.Close(); err != nil {
		f.Close()
		return fmt.Errorf("failed to finalize wav file: %w", err)
	}
	return f.Close()
}
