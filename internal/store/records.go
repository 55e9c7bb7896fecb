package store

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"
)

// Record is a single persisted list entry (a reminder or a shopping item).
type Record struct {
	ID        int       `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}

// ListStore persists named record lists as JSON documents, one file per
// list, under a data directory. Saves replace the whole file; there is no
// journaling and no multi-process safety.
type ListStore struct {
	Dir string
}

func NewListStore(dir string) (*ListStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &ListStore{Dir: dir}, nil
}

func (s *ListStore) path(name string) string {
	return filepath.Join(s.Dir, name+".json")
}

// Load returns the persisted list for name, or an empty list when the file
// does not exist. A malformed file is also treated as empty: losing a list
// beats refusing to start, and the damage is logged so the operator can
// recover the file by hand.
func (s *ListStore) Load(name string) ([]Record, error) {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return []Record{}, nil
		}
		return nil, fmt.Errorf("failed to read list %s: %w", name, err)
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		log.Printf("Warning: list %s is corrupt, starting empty: %v", name, err)
		return []Record{}, nil
	}
	return records, nil
}

// Save replaces the persisted list for name. The document is written to a
// temp file and renamed into place so a crash cannot leave a half-written
// list behind.
func (s *ListStore) Save(name string, records []Record) error {
	if records == nil {
		records = []Record{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode list %s: %w", name, err)
	}

	tmp, err := os.CreateTemp(s.Dir, name+"-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", name, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write list %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp file for %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), s.path(name)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace list %s: %w", name, err)
	}
	return nil
}

// NextID returns the next free record ID for a list. IDs are unique within
// their list, not globally.
func NextID(records []Record) int {
	max := 0
	for _, r := range records {
		if r.ID > max {
			max = r.ID
		}
	}
	return max + 1
}
