package workflow

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rohan/vaani/internal/store"
)

const shoppingList = "shopping"

// Shopping manages the persisted shopping list.
type Shopping struct {
	base
	store ListStore
}

func NewShopping(s ListStore) *Shopping {
	return &Shopping{
		base: base{
			name:        "shopping",
			description: "Add items to the shopping list and check them off",
			triggers: []string{
				"shopping", "shopping list", "shopping cart", "add to list",
				"add", "list", "items", "buy", "purchase",
				"grocery", "groceries",
			},
		},
		store: s,
	}
}

func (s *Shopping) Run(ctx context.Context, utterance string) (string, error) {
	intent := ParseListIntent(utterance)

	records, err := s.store.Load(shoppingList)
	if err != nil {
		return "", fmt.Errorf("failed to load shopping list: %w", err)
	}

	switch intent.Action {
	case ActionAdd:
		if intent.Target == "" {
			return "What should I add to your shopping list?", nil
		}
		added := splitItems(intent.Target)
		for _, item := range added {
			records = append(records, store.Record{
				ID:        store.NextID(records),
				Text:      item,
				CreatedAt: time.Now().UTC(),
			})
		}
		if err := s.store.Save(shoppingList, records); err != nil {
			return "", fmt.Errorf("failed to save shopping list: %w", err)
		}
		return fmt.Sprintf("I've added %s to your shopping list.", spokenJoin(added)), nil

	case ActionComplete:
		if intent.Target == "" {
			return "Which item should I check off?", nil
		}
		idx := findRecord(records, intent.Target)
		if idx < 0 {
			return fmt.Sprintf("I couldn't find %s on your shopping list.", intent.Target), nil
		}
		records[idx].Completed = true
		if err := s.store.Save(shoppingList, records); err != nil {
			return "", fmt.Errorf("failed to save shopping list: %w", err)
		}
		return fmt.Sprintf("Got it. I've checked off %s.", records[idx].Text), nil

	case ActionClear:
		kept, removed := withoutCompleted(records)
		if removed == 0 {
			return "There were no checked off items to clear.", nil
		}
		if err := s.store.Save(shoppingList, kept); err != nil {
			return "", fmt.Errorf("failed to save shopping list: %w", err)
		}
		if removed == 1 {
			return "Cleared one item from your shopping list.", nil
		}
		return fmt.Sprintf("Cleared %s items from your shopping list.", countWord(removed)), nil

	default:
		return speakShopping(records), nil
	}
}

func speakShopping(records []store.Record) string {
	active := activeRecords(records)
	if len(records) == 0 {
		return "Your shopping list is empty."
	}
	if len(active) == 0 {
		return "Everything on your shopping list has been checked off."
	}

	var items []string
	for _, rec := range active {
		items = append(items, rec.Text)
	}
	return fmt.Sprintf("Your shopping list has %s.", spokenJoin(items))
}

// splitItems breaks "eggs, bread and chicken" into separate entries so one
// utterance can add several items, matching how people actually ask.
func splitItems(target string) []string {
	target = strings.ReplaceAll(target, " and ", ",")
	parts := strings.Split(target, ",")

	var items []string
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			items = append(items, part)
		}
	}
	if len(items) == 0 {
		items = []string{target}
	}
	return items
}

// spokenJoin joins items the way you would say them: "milk", "milk and
// eggs", "milk, eggs and bread".
func spokenJoin(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
	}
}
