package workflow

import (
	"context"
	"strings"
	"testing"

	lcllms "github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"
)

type memoryHistory struct {
	messages []lcllms.MessageContent
	roles    []string
}

func (m *memoryHistory) AddMessage(role, content string) error {
	m.roles = append(m.roles, role)
	m.messages = append(m.messages, lcllms.MessageContent{
		Role:  schema.ChatMessageTypeHuman,
		Parts: []lcllms.ContentPart{lcllms.TextPart(content)},
	})
	return nil
}

func (m *memoryHistory) GetHistory(limit int) ([]lcllms.MessageContent, error) {
	if len(m.messages) > limit {
		return m.messages[len(m.messages)-limit:], nil
	}
	return m.messages, nil
}

func TestConversation_CleansAndRecords(t *testing.T) {
	chat := &stubChatter{response: "1. First point\n2. Second point"}
	history := &memoryHistory{}
	c := NewConversation(chat, history)

	response, err := c.Run(context.Background(), "tell me about heaps")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if strings.Contains(response, "1.") || strings.Contains(response, "\n") {
		t.Errorf("Response must be cleaned for speech, got %q", response)
	}

	if len(history.roles) != 2 || history.roles[0] != "human" || history.roles[1] != "ai" {
		t.Errorf("Both turn halves should be recorded, got %v", history.roles)
	}
}

func TestConversation_ChatErrorPropagates(t *testing.T) {
	chat := &stubChatter{}
	chat.err = context.DeadlineExceeded
	c := NewConversation(chat, &memoryHistory{})

	if _, err := c.Run(context.Background(), "hello"); err == nil {
		t.Fatal("Expected the chat error so the registry can apologize")
	}
}
