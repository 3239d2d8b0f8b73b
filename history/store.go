// Package history persists the captions already used by past runs so the
// generator never repeats itself. The state is one JSON array of strings;
// reads are tolerant of corruption, writes are atomic full overwrites.
package history

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Record is one accepted caption together with its normalized comparison key.
// Identity is the key; the raw text is what gets persisted and displayed.
type Record struct {
	Text string
	Key  string
}

// History is an insertion-ordered set of records, unique by normalized key,
// capped with FIFO eviction.
type History struct {
	records []Record
	index   map[string]struct{}
	cap     int
}

// NewHistory returns an empty history with the given cap. A cap of zero or
// less disables eviction.
func NewHistory(cap int) *History {
	return &History{
		index: make(map[string]struct{}),
		cap:   cap,
	}
}

// Add inserts text under its normalized key. It reports whether the entry was
// new; duplicates are ignored. When the cap is exceeded the oldest records
// are evicted first.
func (h *History) Add(text, key string) bool {
	if _, ok := h.index[key]; ok {
		return false
	}
	h.records = append(h.records, Record{Text: text, Key: key})
	h.index[key] = struct{}{}

	for h.cap > 0 && len(h.records) > h.cap {
		evicted := h.records[0]
		h.records = h.records[1:]
		delete(h.index, evicted.Key)
	}
	return true
}

// Contains reports whether a normalized key is present.
func (h *History) Contains(key string) bool {
	_, ok := h.index[key]
	return ok
}

// Len returns the number of retained records.
func (h *History) Len() int { return len(h.records) }

// Records returns the retained records oldest-first. The slice is shared;
// callers must not mutate it.
func (h *History) Records() []Record { return h.records }

// Store loads and saves a History from a single local JSON file.
type Store struct {
	path      string
	cap       int
	normalize func(string) string
}

// NewStore creates a store for the given path. normalize derives comparison
// keys and must be the same function the dedupe guard uses.
func NewStore(path string, cap int, normalize func(string) string) *Store {
	return &Store{path: path, cap: cap, normalize: normalize}
}

// Load reads the persisted history. A missing file, bad JSON or an
// unexpected shape all degrade to an empty history; persistence is
// best-effort and never aborts the pipeline.
func (s *Store) Load() *History {
	h := NewHistory(s.cap)

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: failed to read history %s: %v (starting fresh)", s.path, err)
		}
		return h
	}

	var lines []string
	if err := json.Unmarshal(data, &lines); err != nil {
		log.Printf("Warning: corrupted history %s: %v (starting fresh)", s.path, err)
		return h
	}

	for _, line := range lines {
		h.Add(line, s.normalize(line))
	}
	return h
}

// Save serializes the history as an ordered list, overwriting the state
// file. The write goes to a temp file in the same directory and is renamed
// into place so a concurrent reader never sees a torn file.
func (s *Store) Save(h *History) error {
	lines := make([]string, 0, h.Len())
	for _, r := range h.Records() {
		lines = append(lines, r.Text)
	}

	data, err := json.MarshalIndent(lines, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".used_lines-*.json")
	if err != nil {
		return fmt.Errorf("create temp state file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write history: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp state file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace history %s: %w", s.path, err)
	}
	return nil
}
