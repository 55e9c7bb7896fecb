package workflow

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rohan/vaani/internal/store"
)

// ListStore is the slice of the storage layer the list workflows need.
type ListStore interface {
	Load(name string) ([]store.Record, error)
	Save(name string, records []store.Record) error
}

const remindersList = "reminders"

// Reminders manages the persisted reminder list.
type Reminders struct {
	base
	store ListStore
}

func NewReminders(s ListStore) *Reminders {
	return &Reminders{
		base: base{
			name:        "reminders",
			description: "Add and manage reminders",
			triggers: []string{
				"reminder", "remind me", "add reminder", "set reminder",
				"remind", "todo", "task",
			},
		},
		store: s,
	}
}

func (r *Reminders) Run(ctx context.Context, utterance string) (string, error) {
	intent := ParseListIntent(utterance)

	records, err := r.store.Load(remindersList)
	if err != nil {
		return "", fmt.Errorf("failed to load reminders: %w", err)
	}

	switch intent.Action {
	case ActionAdd:
		if intent.Target == "" {
			return "What should I remind you about?", nil
		}
		records = append(records, store.Record{
			ID:        store.NextID(records),
			Text:      intent.Target,
			CreatedAt: time.Now().UTC(),
		})
		if err := r.store.Save(remindersList, records); err != nil {
			return "", fmt.Errorf("failed to save reminders: %w", err)
		}
		return fmt.Sprintf("Okay, I'll remind you to %s.", intent.Target), nil

	case ActionComplete:
		if intent.Target == "" {
			return "Which reminder should I mark as done?", nil
		}
		idx := findRecord(records, intent.Target)
		if idx < 0 {
			return fmt.Sprintf("I couldn't find a reminder about %s.", intent.Target), nil
		}
		records[idx].Completed = true
		if err := r.store.Save(remindersList, records); err != nil {
			return "", fmt.Errorf("failed to save reminders: %w", err)
		}
		return fmt.Sprintf("Done. I've marked %s as completed.", records[idx].Text), nil

	case ActionClear:
		kept, removed := withoutCompleted(records)
		if removed == 0 {
			return "There were no completed reminders to clear.", nil
		}
		if err := r.store.Save(remindersList, kept); err != nil {
			return "", fmt.Errorf("failed to save reminders: %w", err)
		}
		if removed == 1 {
			return "Cleared one completed reminder.", nil
		}
		return fmt.Sprintf("Cleared %s completed reminders.", countWord(removed)), nil

	default:
		return speakReminders(records), nil
	}
}

func speakReminders(records []store.Record) string {
	active := activeRecords(records)
	if len(records) == 0 {
		return "You have no reminders set."
	}
	if len(active) == 0 {
		return "All your reminders have been completed."
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "You have %s active reminders. ", countWord(len(active)))
	if len(active) == 1 {
		sb.Reset()
		sb.WriteString("You have one active reminder. ")
	}
	for i, rec := range active {
		fmt.Fprintf(&sb, "%s, %s. ", rankWord(i), rec.Text)
	}
	return strings.TrimSpace(sb.String())
}

// findRecord returns the index of the first record whose text contains the
// target (case-insensitive), or -1.
func findRecord(records []store.Record, target string) int {
	target = strings.ToLower(target)
	for i, rec := range records {
		if rec.Completed {
			continue
		}
		if strings.Contains(strings.ToLower(rec.Text), target) {
			return i
		}
	}
	return -1
}

func activeRecords(records []store.Record) []store.Record {
	var active []store.Record
	for _, rec := range records {
		if !rec.Completed {
			active = append(active, rec)
		}
	}
	return active
}

func withoutCompleted(records []store.Record) ([]store.Record, int) {
	kept := make([]store.Record, 0, len(records))
	for _, rec := range records {
		if !rec.Completed {
			kept = append(kept, rec)
		}
	}
	return kept, len(records) - len(kept)
}
