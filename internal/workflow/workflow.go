package workflow

import (
	"context"
	"fmt"
	"strings"

	"github.com/rohan/vaani/internal/observability"
)

// Workflow is a self-contained handler for one class of user intent.
// Triggers are literal phrases; an utterance containing any of them
// (case-insensitive) selects the workflow. Run returns plain spoken text,
// never markdown.
type Workflow interface {
	Name() string
	Description() string
	Triggers() []string
	Run(ctx context.Context, utterance string) (string, error)
}

// Fallback handles utterances no workflow claims, typically open-ended
// conversation.
type Fallback interface {
	Run(ctx context.Context, utterance string) (string, error)
}

const apology = "Sorry, something went wrong while handling that. Please try again."

// Registry holds the workflows in registration order. Order is the
// tie-break contract: when several workflows share a trigger, the first
// one registered wins. The set is fixed at startup.
type Registry struct {
	workflows []Workflow
	fallback  Fallback
	logger    *observability.Logger
}

func NewRegistry(fallback Fallback, logger *observability.Logger) *Registry {
	return &Registry{
		fallback: fallback,
		logger:   logger,
	}
}

func (r *Registry) Register(w Workflow) {
	r.workflows = append(r.workflows, w)
}

// Workflows returns the registered workflows in registration order.
func (r *Registry) Workflows() []Workflow {
	return r.workflows
}

// Describe lists every workflow as "name: description", in registration
// order, for help responses.
func (r *Registry) Describe() []string {
	var lines []string
	for _, w := range r.workflows {
		lines = append(lines, fmt.Sprintf("%s: %s", w.Name(), w.Description()))
	}
	return lines
}

// Dispatch routes an utterance to the first registered workflow whose
// trigger it contains, or to the fallback when none match. The returned
// workflow is nil for fallback turns. Handler errors never escape: they
// are logged and converted to a spoken apology so the turn always
// completes.
func (r *Registry) Dispatch(ctx context.Context, utterance string) (Workflow, string) {
	normalized := strings.ToLower(strings.TrimSpace(utterance))

	if normalized != "" {
		for _, w := range r.workflows {
			if !matches(w.Triggers(), normalized) {
				continue
			}
			r.logger.LogDispatch(w.Name(), normalized)
			response, err := w.Run(ctx, strings.TrimSpace(utterance))
			if err != nil {
				r.logger.LogError(w.Name(), err)
				return w, apology
			}
			r.logger.LogWorkflow(w.Name(), response)
			return w, response
		}
	}

	r.logger.LogDispatch("fallback", normalized)
	if r.fallback == nil {
		return nil, "I'm not sure how to help with that."
	}
	response, err := r.fallback.Run(ctx, strings.TrimSpace(utterance))
	if err != nil {
		r.logger.LogError("fallback", err)
		return nil, apology
	}
	return nil, response
}

func matches(triggers []string, normalized string) bool {
	for _, trigger := range triggers {
		trigger = strings.ToLower(strings.TrimSpace(trigger))
		if trigger == "" {
			continue
		}
		if strings.Contains(normalized, trigger) {
			return true
		}
	}
	return false
}
