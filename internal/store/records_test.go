package store

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *ListStore {
	t.Helper()
	s, err := NewListStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewListStore failed: %v", err)
	}
	return s
}

func TestListStore_RoundTrip(t *testing.T) {
	s := newTestStore(t)

	created := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	records := []Record{
		{ID: 1, Text: "call mom", Completed: false, CreatedAt: created},
		{ID: 2, Text: "buy milk", Completed: true, CreatedAt: created.Add(time.Minute)},
	}

	if err := s.Save("reminders", records); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := s.Load("reminders")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(loaded, records) {
		t.Errorf("Round trip mismatch:\n got %+v\nwant %+v", loaded, records)
	}
}

func TestListStore_LoadIsIdempotent(t *testing.T) {
	s := newTestStore(t)

	records := []Record{{ID: 1, Text: "eggs", CreatedAt: time.Now().UTC().Truncate(time.Second)}}
	if err := s.Save("shopping", records); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	first, err := s.Load("shopping")
	if err != nil {
		t.Fatalf("first Load failed: %v", err)
	}
	second, err := s.Load("shopping")
	if err != nil {
		t.Fatalf("second Load failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Two loads without a save differ:\n%+v\n%+v", first, second)
	}
}

func TestListStore_MissingFileIsEmpty(t *testing.T) {
	s := newTestStore(t)

	records, err := s.Load("nothing-here")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("Expected empty list for missing file, got %d records", len(records))
	}
}

func TestListStore_CorruptFileIsEmpty(t *testing.T) {
	s := newTestStore(t)

	path := filepath.Join(s.Dir, "reminders.json")
	if err := os.WriteFile(path, []byte("{not json at all"), 0644); err != nil {
		t.Fatal(err)
	}

	records, err := s.Load("reminders")
	if err != nil {
		t.Fatalf("Load should recover from corrupt content, got: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("Expected empty list for corrupt file, got %d records", len(records))
	}
}

func TestListStore_SaveReplacesWholeFile(t *testing.T) {
	s := newTestStore(t)

	if err := s.Save("shopping", []Record{{ID: 1, Text: "milk"}, {ID: 2, Text: "eggs"}}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := s.Save("shopping", []Record{{ID: 3, Text: "bread"}}); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	records, err := s.Load("shopping")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(records) != 1 || records[0].Text != "bread" {
		t.Errorf("Save should fully replace prior content, got %+v", records)
	}
}

func TestNextID(t *testing.T) {
	cases := []struct {
		name    string
		records []Record
		want    int
	}{
		{"empty", nil, 1},
		{"sequential", []Record{{ID: 1}, {ID: 2}}, 3},
		{"gaps", []Record{{ID: 2}, {ID: 7}}, 8},
	}
	for _, tc := range cases {
		if got := NextID(tc.records); got != tc.want {
			t.Errorf("%s: NextID = %d, want %d", tc.name, got, tc.want)
		}
	}
}
