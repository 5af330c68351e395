// Package memstore keeps tasks in a plain slice for the lifetime of the
// process.
package memstore

import (
	"slices"

	"tasklist/internal/task"
)

var _ task.Repository = (*Store)(nil)

// Store is not safe for concurrent use; all calls come from the UI loop.
type Store struct {
	tasks  []task.Task
	lastID task.ID
}

func New() *Store {
	return &Store{}
}

func (s *Store) Add(d task.Draft) (task.Task, error) {
	s.lastID++
	t := task.New(s.lastID, d)
	s.tasks = append(s.tasks, t)
	return t, nil
}

func (s *Store) Update(t task.Task) error {
	i := s.index(t.ID)
	if i < 0 {
		return task.ErrTaskNotFound
	}
	s.tasks[i] = t
	return nil
}

func (s *Store) Remove(id task.ID) error {
	if i := s.index(id); i >= 0 {
		s.tasks = slices.Delete(s.tasks, i, i+1)
	}
	return nil
}

func (s *Store) List() ([]task.Task, error) {
	return slices.Clone(s.tasks), nil
}

func (s *Store) index(id task.ID) int {
	return slices.IndexFunc(s.tasks, func(t task.Task) bool { return t.ID == id })
}
