package workflow

import (
	"context"
	"fmt"

	"github.com/rohan/vaani/internal/llm"
	lcllms "github.com/tmc/langchaingo/llms"
)

// History is the slice of the history store the fallback needs.
type History interface {
	AddMessage(role string, content string) error
	GetHistory(limit int) ([]lcllms.MessageContent, error)
}

// historyWindow is the number of prior messages carried into each fallback
// turn: five exchanges.
const historyWindow = 10

const fallbackSystemPrompt = "You are a friendly, conversational voice assistant " +
	"optimized for text-to-speech. CRITICAL: Write exactly as you would speak to " +
	"someone in person. NEVER use numbered lists, bullet points, or formatting " +
	"symbols. Use natural speech patterns like 'first', 'second', 'next', " +
	"'finally'. Convert technical content into conversational speech and avoid " +
	"reading out symbols or raw numbers. Keep responses concise."

// Conversation is the fallback handler: open-ended chat with a rolling
// window of persisted context.
type Conversation struct {
	chat    Chatter
	history History
}

func NewConversation(chat Chatter, history History) *Conversation {
	return &Conversation{chat: chat, history: history}
}

func (c *Conversation) Run(ctx context.Context, utterance string) (string, error) {
	// A turn without context is still better than no turn; history
	// failures are not fatal.
	history, err := c.history.GetHistory(historyWindow)
	if err != nil {
		history = nil
	}

	reply, err := c.chat.Chat(ctx, "fallback", fallbackSystemPrompt, history, utterance)
	if err != nil {
		return "", fmt.Errorf("fallback chat: %w", err)
	}
	reply = llm.CleanForSpeech(reply)

	_ = c.history.AddMessage("human", utterance)
	_ = c.history.AddMessage("ai", reply)

	return reply, nil
}
