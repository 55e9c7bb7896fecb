package workflow

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rohan/vaani/internal/observability"
)

type stubWorkflow struct {
	base
	response string
	err      error
	calls    int
}

func newStub(name string, triggers []string, response string) *stubWorkflow {
	return &stubWorkflow{
		base:     base{name: name, description: name + " stub", triggers: triggers},
		response: response,
	}
}

func (s *stubWorkflow) Run(ctx context.Context, utterance string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

type stubFallback struct {
	response string
	calls    int
}

func (s *stubFallback) Run(ctx context.Context, utterance string) (string, error) {
	s.calls++
	return s.response, nil
}

func newTestRegistry(fallback Fallback) *Registry {
	return NewRegistry(fallback, observability.NewLogger())
}

func TestDispatch_SelectsByTrigger(t *testing.T) {
	news := newStub("news", []string{"news", "hn"}, "here is the news")
	reminders := newStub("reminders", []string{"remind", "reminder"}, "reminder done")
	fallback := &stubFallback{response: "chat"}

	r := newTestRegistry(fallback)
	r.Register(news)
	r.Register(reminders)

	selected, response := r.Dispatch(context.Background(), "play the news")
	if selected != Workflow(news) {
		t.Fatalf("Expected news workflow, got %v", selected)
	}
	if response != "here is the news" {
		t.Errorf("Unexpected response: %q", response)
	}
	if news.calls != 1 || reminders.calls != 0 || fallback.calls != 0 {
		t.Errorf("Call counts wrong: news=%d reminders=%d fallback=%d", news.calls, reminders.calls, fallback.calls)
	}
}

func TestDispatch_CaseInsensitive(t *testing.T) {
	news := newStub("news", []string{"news"}, "bulletin")
	r := newTestRegistry(&stubFallback{})
	r.Register(news)

	selected, _ := r.Dispatch(context.Background(), "  Play The NEWS please ")
	if selected != Workflow(news) {
		t.Fatal("Matching should be case-insensitive and trim whitespace")
	}
}

func TestDispatch_NoMatchGoesToFallback(t *testing.T) {
	news := newStub("news", []string{"news"}, "bulletin")
	fallback := &stubFallback{response: "let's chat"}

	r := newTestRegistry(fallback)
	r.Register(news)

	selected, response := r.Dispatch(context.Background(), "tell me a joke")
	if selected != nil {
		t.Fatalf("Expected nil workflow for fallback turn, got %v", selected)
	}
	if response != "let's chat" {
		t.Errorf("Unexpected response: %q", response)
	}
	if fallback.calls != 1 {
		t.Errorf("Fallback should be invoked exactly once, got %d", fallback.calls)
	}
}

func TestDispatch_EmptyUtteranceGoesToFallback(t *testing.T) {
	news := newStub("news", []string{"news"}, "bulletin")
	fallback := &stubFallback{response: "hm?"}

	r := newTestRegistry(fallback)
	r.Register(news)

	selected, _ := r.Dispatch(context.Background(), "   ")
	if selected != nil {
		t.Fatal("Empty utterance must not match any trigger")
	}
	if fallback.calls != 1 {
		t.Errorf("Fallback should be invoked exactly once, got %d", fallback.calls)
	}
	if news.calls != 0 {
		t.Errorf("News must not run on empty utterance")
	}
}

func TestDispatch_FirstRegisteredWins(t *testing.T) {
	first := newStub("todo", []string{"task"}, "from todo")
	second := newStub("projects", []string{"task"}, "from projects")

	r := newTestRegistry(&stubFallback{})
	r.Register(first)
	r.Register(second)

	// Repeated dispatches must resolve the same way every time.
	for i := 0; i < 10; i++ {
		selected, response := r.Dispatch(context.Background(), "new task for today")
		if selected != Workflow(first) || response != "from todo" {
			t.Fatalf("Dispatch %d: expected first-registered workflow, got %v / %q", i, selected, response)
		}
	}
	if second.calls != 0 {
		t.Errorf("Later registration must never run on a shared trigger, got %d calls", second.calls)
	}
}

func TestDispatch_WorkflowErrorBecomesApology(t *testing.T) {
	broken := newStub("news", []string{"news"}, "")
	broken.err = errors.New("boom")

	r := newTestRegistry(&stubFallback{})
	r.Register(broken)

	selected, response := r.Dispatch(context.Background(), "any news?")
	if selected != Workflow(broken) {
		t.Fatal("Errored workflow should still be reported as selected")
	}
	if response != apology {
		t.Errorf("Expected the apology, got %q", response)
	}
}

func TestDispatch_NoFallbackConfigured(t *testing.T) {
	r := newTestRegistry(nil)
	selected, response := r.Dispatch(context.Background(), "anything")
	if selected != nil || response == "" {
		t.Errorf("Expected a canned response with no fallback, got %v / %q", selected, response)
	}
}

func TestDescribe(t *testing.T) {
	r := newTestRegistry(&stubFallback{})
	r.Register(newStub("news", []string{"news"}, ""))
	r.Register(newStub("reminders", []string{"remind"}, ""))

	lines := r.Describe()
	if len(lines) != 2 {
		t.Fatalf("Expected 2 descriptions, got %d", len(lines))
	}
	if lines[0] != "news: news stub" {
		t.Errorf("Unexpected first description: %q", lines[0])
	}
}

func TestHelp_ListsOtherWorkflows(t *testing.T) {
	r := newTestRegistry(&stubFallback{})
	r.Register(newStub("news", []string{"news"}, ""))
	help := NewHelp(r)
	r.Register(help)

	response, err := help.Run(context.Background(), "what can you do")
	if err != nil {
		t.Fatalf("Help.Run failed: %v", err)
	}
	if want := "news: news stub"; !strings.Contains(response, want) {
		t.Errorf("Help should mention %q, got %q", want, response)
	}
	if strings.Contains(response, "help: Explain") {
		t.Errorf("Help should not describe itself, got %q", response)
	}
}
