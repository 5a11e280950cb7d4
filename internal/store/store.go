// Package store owns the in-memory task collection and derives each task's
// lifecycle bucket (doing, overdue, done) from its completion state and end
// date. All mutations run on one goroutine; the store does no locking.
package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/minhtran/todi/internal/dates"
	"github.com/minhtran/todi/internal/models"
)

// TaskStore holds tasks in insertion order so list output groups stably
type TaskStore struct {
	tasks []*models.Task
	byID  map[string]*models.Task
}

// New creates a store seeded with the given tasks (in order). Seed ids are
// kept as-is; they come from a previous run of the same store.
func New(seed ...models.Task) *TaskStore {
	s := &TaskStore{
		byID: make(map[string]*models.Task),
	}
	for _, t := range seed {
		task := t
		s.tasks = append(s.tasks, &task)
		s.byID[task.ID] = &task
	}
	return s
}

// CreateTask appends a new task with a fresh id. Dates, when present, are
// normalized to canonical days; a half-set pair is stored as no dates at
// all so a task never carries only one of them.
func (s *TaskStore) CreateTask(text string, category models.Category, start, end *time.Time) models.Task {
	task := &models.Task{
		ID:       uuid.NewString(),
		Text:     text,
		Category: category,
	}
	task.StartDate, task.EndDate = canonicalPair(start, end)

	s.tasks = append(s.tasks, task)
	s.byID[task.ID] = task
	return *task
}

// EditTask replaces the task's text, category and date window in place.
// Completion and overdue flags are untouched; RecomputeOverdue re-derives
// them. Editing an id that no longer exists is a no-op.
func (s *TaskStore) EditTask(id, text string, category models.Category, start, end *time.Time) {
	task, ok := s.byID[id]
	if !ok {
		return
	}
	task.Text = text
	task.Category = category
	task.StartDate, task.EndDate = canonicalPair(start, end)
}

// ToggleCompleted flips the task's completion state. Toggling an overdue
// task resolves the overdue state instead: the task stays completed and
// moves from the overdue bucket to done. Unknown ids are a no-op.
func (s *TaskStore) ToggleCompleted(id string) {
	task, ok := s.byID[id]
	if !ok {
		return
	}
	if task.Overdue {
		task.Overdue = false
		task.Completed = true
		return
	}
	task.Completed = !task.Completed
}

// DeleteTask removes the task. Unknown ids are a no-op.
func (s *TaskStore) DeleteTask(id string) {
	if _, ok := s.byID[id]; !ok {
		return
	}
	delete(s.byID, id)
	for i, t := range s.tasks {
		if t.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			break
		}
	}
}

// RecomputeOverdue re-derives overdue state against the given instant.
// A task whose end date lies strictly before the current canonical day is
// forced completed and marked overdue unless it was already completed by
// hand. Overdue is cleared only when the end date no longer lies in the
// past, so the flag survives repeated passes until an edit moves the
// window. Callers run this on every load and mutation boundary; the pass
// is idempotent.
func (s *TaskStore) RecomputeOverdue(now time.Time) {
	today := dates.Normalize(now)
	for _, task := range s.tasks {
		pastEnd := task.EndDate != nil && task.EndDate.Before(today)
		if !pastEnd {
			task.Overdue = false
			continue
		}
		if !task.Completed {
			task.Completed = true
			task.Overdue = true
		}
	}
}

// ListBy returns the tasks in the given bucket, in insertion order
func (s *TaskStore) ListBy(bucket models.Bucket) []models.Task {
	var out []models.Task
	for _, task := range s.tasks {
		if task.Bucket() == bucket {
			out = append(out, *task)
		}
	}
	return out
}

// All returns every task in insertion order
func (s *TaskStore) All() []models.Task {
	out := make([]models.Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		out = append(out, *task)
	}
	return out
}

// Get returns the task with the given id
func (s *TaskStore) Get(id string) (models.Task, bool) {
	task, ok := s.byID[id]
	if !ok {
		return models.Task{}, false
	}
	return *task, true
}

// Len returns the number of tasks
func (s *TaskStore) Len() int {
	return len(s.tasks)
}

func canonicalPair(start, end *time.Time) (*time.Time, *time.Time) {
	if start == nil || end == nil {
		return nil, nil
	}
	a := dates.Normalize(*start)
	b := dates.Normalize(*end)
	return &a, &b
}
