// Package tracker wires the record store to tasks and budget transactions.
// Every mutation is persisted immediately.
package tracker

import (
	"errors"
	"fmt"

	"github.com/rogersnm/labkit/internal/model"
	"github.com/rogersnm/labkit/internal/store"
	"go.uber.org/zap"
)

// ErrNotSaved wraps persistence failures after an in-memory change succeeded.
var ErrNotSaved = errors.New("changes kept in memory but not saved")

type Tasks struct {
	store *store.Store[model.Task, *model.Task]
	log   *zap.Logger
}

// OpenTasks loads the tasks file at path. A file that cannot be read is
// logged and the tracker starts empty.
func OpenTasks(path string, log *zap.Logger) *Tasks {
	if log == nil {
		log = zap.NewNop()
	}
	s := store.New[model.Task](path, log)
	if err := s.Load(); err != nil {
		log.Warn("could not load tasks, starting with an empty list", zap.String("path", path), zap.Error(err))
	}
	return &Tasks{store: s, log: log}
}

// Add creates a task. Validation errors are returned unchanged; a failed save
// is logged and returned wrapped in ErrNotSaved alongside the new task.
func (t *Tasks) Add(description, category string) (*model.Task, error) {
	task, err := model.NewTask(description, category)
	if err != nil {
		return nil, err
	}
	if _, err := t.store.Add(task); err != nil {
		return nil, err
	}
	return task, persist(t.store, t.log)
}

func (t *Tasks) Find(id int) (*model.Task, bool) {
	return t.store.Find(id)
}

// SetDone marks the task done or open. found is false when no task has the id.
func (t *Tasks) SetDone(id int, done bool) (found bool, err error) {
	found = t.store.Update(id, func(task *model.Task) {
		if done {
			task.MarkDone()
		} else {
			task.MarkUndone()
		}
	})
	if !found {
		return false, nil
	}
	return true, persist(t.store, t.log)
}

func (t *Tasks) List() []*model.Task { return t.store.All() }

func (t *Tasks) ByCategory(category string) []*model.Task {
	return t.store.FilterByCategory(category)
}

func (t *Tasks) Search(query string) []*model.Task { return t.store.Search(query) }

func (t *Tasks) Save() error { return persist(t.store, t.log) }

func (t *Tasks) Path() string { return t.store.Path() }

type saver interface {
	Save() error
	Path() string
}

func persist(s saver, log *zap.Logger) error {
	if err := s.Save(); err != nil {
		log.Warn("could not save records", zap.String("path", s.Path()), zap.Error(err))
		return fmt.Errorf("%w: %w", ErrNotSaved, err)
	}
	return nil
}
