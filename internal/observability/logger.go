package observability

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"
)

// EventType defines the category of the log event.
type EventType string

const (
	EventTypeTranscript EventType = "transcript"
	EventTypeDispatch   EventType = "dispatch"
	EventTypeWorkflow   EventType = "workflow"
	EventTypeLLM        EventType = "llm"
	EventTypeSpeech     EventType = "speech"
	EventTypeError      EventType = "error"
)

// Event represents a structured log entry.
type Event struct {
	Type      EventType `json:"type"`
	Workflow  string    `json:"workflow,omitempty"`
	Data      any       `json:"data"`
	Timestamp time.Time `json:"timestamp"`
}

// Logger emits structured JSON events. LLM exchanges are additionally
// mirrored to a rotating jsonl file for offline inspection.
type Logger struct {
	llmLogPath string
	maxSize    int64
}

func NewLogger() *Logger {
	return &Logger{
		llmLogPath: filepath.Join("logs", "llm.jsonl"),
		maxSize:    10 * 1024 * 1024, // 10MB
	}
}

// Log emits a structured JSON event to stdout.
func (l *Logger) Log(evt Event) {
	if evt.Timestamp.IsZero() {
		evt.Timestamp = time.Now()
	}
	data, err := json.Marshal(evt)
	if err != nil {
		fmt.Printf("{\"error\": \"failed to marshal event: %v\"}\n", err)
		return
	}
	fmt.Println(string(data))

	if evt.Type == EventTypeLLM {
		l.writeToFile(data)
	}
}

func (l *Logger) writeToFile(data []byte) {
	if err := os.MkdirAll(filepath.Dir(l.llmLogPath), 0755); err != nil {
		log.Printf("failed to create log directory: %v", err)
		return
	}

	// Check size before writing
	info, err := os.Stat(l.llmLogPath)
	if err == nil && info.Size() > l.maxSize {
		l.rotateLogs()
	}

	f, err := os.OpenFile(l.llmLogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.Printf("failed to open log file: %v", err)
		return
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		log.Printf("failed to write to log file: %v", err)
	}
}

func (l *Logger) rotateLogs() {
	// Simple rotation: keep one .old file
	oldPath := l.llmLogPath + ".old"
	_ = os.Remove(oldPath)
	_ = os.Rename(l.llmLogPath, oldPath)
}

// Helper methods for common events

func (l *Logger) LogTranscript(text string) {
	l.Log(Event{
		Type: EventTypeTranscript,
		Data: map[string]string{"text": text},
	})
}

func (l *Logger) LogDispatch(workflow, utterance string) {
	l.Log(Event{
		Type:     EventTypeDispatch,
		Workflow: workflow,
		Data:     map[string]string{"utterance": utterance},
	})
}

func (l *Logger) LogWorkflow(workflow, response string) {
	l.Log(Event{
		Type:     EventTypeWorkflow,
		Workflow: workflow,
		Data:     map[string]string{"response": response},
	})
}

func (l *Logger) LogLLM(workflow string, prompt any, response string) {
	l.Log(Event{
		Type:     EventTypeLLM,
		Workflow: workflow,
		Data: map[string]any{
			"prompt":   prompt,
			"response": response,
		},
	})
}

func (l *Logger) LogSpeech(text string) {
	l.Log(Event{
		Type: EventTypeSpeech,
		Data: map[string]string{"text": text},
	})
}

func (l *Logger) LogError(stage string, err error) {
	l.Log(Event{
		Type: EventTypeError,
		Data: map[string]string{
			"stage": stage,
			"error": err.Error(),
		},
	})
}
