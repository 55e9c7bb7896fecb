package voice

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func writeTestClip(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clip.wav")
	samples := make([]int16, SampleRate/2)
	if err := WriteWAV(path, samples); err != nil {
		t.Fatalf("WriteWAV failed: %v", err)
	}
	return path
}

func TestWriteWAV_ProducesFile(t *testing.T) {
	path := writeTestClip(t)
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	// Header plus half a second of 16-bit mono samples.
	if info.Size() < int64(SampleRate) {
		t.Errorf("WAV file suspiciously small: %d bytes", info.Size())
	}
}

func TestTranscribe(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			t.Errorf("Expected multipart upload: %v", err)
		}
		if _, _, err := r.FormFile("file"); err != nil {
			t.Errorf("Missing file field: %v", err)
		}
		if got := r.FormValue("model"); got != "whisper-1" {
			t.Errorf("Unexpected model field: %q", got)
		}
		fmt.Fprint(w, `{"text":"  turn on the news  "}`)
	}))
	defer server.Close()

	tr := NewTranscriber(server.URL)
	text, err := tr.Transcribe(context.Background(), writeTestClip(t))
	if err != nil {
		t.Fatalf("Transcribe failed: %v", err)
	}
	if text != "turn on the news" {
		t.Errorf("Expected trimmed transcript, got %q", text)
	}
}

func TestTranscribe_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	tr := NewTranscriber(server.URL)
	if _, err := tr.Transcribe(context.Background(), writeTestClip(t)); err == nil {
		t.Fatal("Expected error on non-200 response")
	}
}

func TestTooShort(t *testing.T) {
	if !TooShort(make([]int16, 100)) {
		t.Error("100 samples should be too short")
	}
	if TooShort(make([]int16, SampleRate)) {
		t.Error("A full second should not be too short")
	}
}
