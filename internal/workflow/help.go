package workflow

import (
	"context"
	"strings"
)

// Help enumerates the registered workflows. It closes over the registry it
// is registered in, so register it last to keep its triggers from shadowing
// anything.
type Help struct {
	base
	registry *Registry
}

func NewHelp(registry *Registry) *Help {
	return &Help{
		base: base{
			name:        "help",
			description: "Explain what the assistant can do",
			triggers:    []string{"help", "what can you do", "what do you do"},
		},
		registry: registry,
	}
}

func (h *Help) Run(ctx context.Context, utterance string) (string, error) {
	var sb strings.Builder
	sb.WriteString("Here's what I can do. ")
	for _, line := range h.registry.Describe() {
		if strings.HasPrefix(line, h.name+":") {
			continue
		}
		sb.WriteString(line)
		sb.WriteString(". ")
	}
	sb.WriteString("And if nothing fits, you can just chat with me.")
	return sb.String(), nil
}
