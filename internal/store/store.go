// Package store keeps identified records in memory and persists them as one
// JSON list per file.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Record is implemented by pointer record types such as *model.Task.
type Record[T any] interface {
	*T
	RecordID() int
	SetRecordID(id int)
	Validate() error
	ApplyDefaults()
	RecordCategory() string
	Searchable() []string
}

// Store holds records in insertion order. Ids are unique within a store and
// are assigned from a counter that is recomputed on every load.
type Store[T any, P Record[T]] struct {
	path   string
	log    *zap.Logger
	items  []P
	nextID int
}

func New[T any, P Record[T]](path string, log *zap.Logger) *Store[T, P] {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store[T, P]{path: path, log: log, nextID: 1}
}

func (s *Store[T, P]) Path() string { return s.path }

// NextID is the id the next Add will assign.
func (s *Store[T, P]) NextID() int { return s.nextID }

func (s *Store[T, P]) Len() int { return len(s.items) }

// Add validates rec, assigns it the next id and appends it. A rejected record
// leaves the store unchanged.
func (s *Store[T, P]) Add(rec P) (P, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	rec.SetRecordID(s.nextID)
	s.nextID++
	s.items = append(s.items, rec)
	s.log.Debug("record added", zap.Int("id", rec.RecordID()), zap.String("path", s.path))
	return rec, nil
}

func (s *Store[T, P]) Find(id int) (P, bool) {
	for _, r := range s.items {
		if r.RecordID() == id {
			return r, true
		}
	}
	return nil, false
}

// Update applies fn to the record with the given id. It reports false when
// no such record exists.
func (s *Store[T, P]) Update(id int, fn func(P)) bool {
	r, ok := s.Find(id)
	if !ok {
		return false
	}
	fn(r)
	return true
}

// All returns the records in insertion order. The slice is a copy; the
// records are shared.
func (s *Store[T, P]) All() []P {
	out := make([]P, len(s.items))
	copy(out, s.items)
	return out
}

// Save writes every record to the backing file.
func (s *Store[T, P]) Save() error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	items := s.items
	if items == nil {
		items = []P{}
	}
	if err := enc.Encode(items); err != nil {
		return fmt.Errorf("encoding records: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(s.path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", s.path, err)
	}
	return nil
}

// Load replaces the in-memory records with the backing file's contents. A
// missing file yields an empty store. On any other failure the store is reset
// to empty and the error is returned.
func (s *Store[T, P]) Load() error {
	s.reset()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading %s: %w", s.path, err)
	}

	items, err := decode[T, P](data)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", s.path, err)
	}
	s.items = items
	s.renumber()
	s.log.Debug("records loaded", zap.Int("count", len(s.items)), zap.String("path", s.path))
	return nil
}

func (s *Store[T, P]) reset() {
	s.items = nil
	s.nextID = 1
}

// renumber gives a fresh id to every record whose id is negative or already
// taken, then moves the counter past the highest id.
func (s *Store[T, P]) renumber() {
	maxID := 0
	seen := make(map[int]bool, len(s.items))
	var stray []P
	for _, r := range s.items {
		id := r.RecordID()
		if id < 0 || seen[id] {
			stray = append(stray, r)
			continue
		}
		seen[id] = true
		maxID = max(maxID, id)
	}
	s.nextID = maxID + 1
	for _, r := range stray {
		s.log.Warn("renumbering record with missing or duplicate id",
			zap.Int("old_id", r.RecordID()), zap.Int("new_id", s.nextID), zap.String("path", s.path))
		r.SetRecordID(s.nextID)
		s.nextID++
	}
}

// decode reads a JSON list of objects. Entries that are not objects are
// skipped; records without an id get -1 so renumber picks them up.
func decode[T any, P Record[T]](data []byte) ([]P, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	items := make([]P, 0, len(raw))
	for i, msg := range raw {
		trimmed := bytes.TrimSpace(msg)
		if len(trimmed) == 0 || trimmed[0] != '{' {
			continue
		}
		var probe struct {
			ID *int `json:"id"`
		}
		if err := json.Unmarshal(trimmed, &probe); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		rec := P(new(T))
		if err := json.Unmarshal(trimmed, rec); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		if probe.ID == nil {
			rec.SetRecordID(-1)
		}
		rec.ApplyDefaults()
		items = append(items, rec)
	}
	return items, nil
}
