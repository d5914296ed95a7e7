package model

import (
	"fmt"
	"strings"
)

// DefaultCategory is used when a record is created or loaded without one.
const DefaultCategory = "general"

type Task struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
	Done        bool   `json:"status"`
	Category    string `json:"category"`
}

// NewTask returns an open task with a trimmed description. The id is assigned
// by the store.
func NewTask(description, category string) (*Task, error) {
	t := &Task{
		Description: strings.TrimSpace(description),
		Category:    normalizeCategory(category),
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Task) Validate() error {
	if strings.TrimSpace(t.Description) == "" {
		return invalid("description", "task description must not be empty")
	}
	return nil
}

func (t *Task) MarkDone()    { t.Done = true }
func (t *Task) MarkUndone()  { t.Done = false }
func (t *Task) IsDone() bool { return t.Done }

func (t *Task) RecordID() int      { return t.ID }
func (t *Task) SetRecordID(id int) { t.ID = id }

func (t *Task) RecordCategory() string { return t.Category }

func (t *Task) Searchable() []string { return []string{t.Description, t.Category} }

func (t *Task) ApplyDefaults() {
	t.Category = normalizeCategory(t.Category)
}

func (t *Task) String() string {
	box := "[ ]"
	if t.Done {
		box = "[x]"
	}
	return fmt.Sprintf("%s %s #%s (id=%d)", box, t.Description, t.Category, t.ID)
}

func normalizeCategory(c string) string {
	c = strings.TrimSpace(c)
	if c == "" {
		return DefaultCategory
	}
	return c
}
