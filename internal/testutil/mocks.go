package testutil

import (
	"tasklist/internal/form"
	"tasklist/internal/task"
)

// MockRepository is a task.Repository test double whose calls can be made
// to fail.
type MockRepository struct {
	Tasks     []task.Task
	AddErr    error
	UpdateErr error
	RemoveErr error
	ListErr   error
	NextID    task.ID
}

func NewMockRepository() *MockRepository {
	return &MockRepository{NextID: 1}
}

func (m *MockRepository) Add(d task.Draft) (task.Task, error) {
	if m.AddErr != nil {
		return task.Task{}, m.AddErr
	}
	t := task.New(m.NextID, d)
	m.NextID++
	m.Tasks = append(m.Tasks, t)
	return t, nil
}

func (m *MockRepository) Update(t task.Task) error {
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	for i := range m.Tasks {
		if m.Tasks[i].ID == t.ID {
			m.Tasks[i] = t
			return nil
		}
	}
	return task.ErrTaskNotFound
}

func (m *MockRepository) Remove(id task.ID) error {
	if m.RemoveErr != nil {
		return m.RemoveErr
	}
	for i := range m.Tasks {
		if m.Tasks[i].ID == id {
			m.Tasks = append(m.Tasks[:i], m.Tasks[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *MockRepository) List() ([]task.Task, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return append([]task.Task(nil), m.Tasks...), nil
}

// Notice is one recorded Notify call.
type Notice struct {
	Message string
	Kind    form.Kind
}

// MockNotifier records every notice it receives.
type MockNotifier struct {
	Notices []Notice
}

func (m *MockNotifier) Notify(message string, kind form.Kind) {
	m.Notices = append(m.Notices, Notice{Message: message, Kind: kind})
}

// Last returns the most recent notice, or the zero Notice.
func (m *MockNotifier) Last() Notice {
	if len(m.Notices) == 0 {
		return Notice{}
	}
	return m.Notices[len(m.Notices)-1]
}

// MockConfirmer holds the pending reply so tests can answer it later.
type MockConfirmer struct {
	Messages []string
	reply    func(bool)
}

func (m *MockConfirmer) Confirm(message string, reply func(bool)) {
	m.Messages = append(m.Messages, message)
	m.reply = reply
}

// Pending reports whether a confirmation is waiting for an answer.
func (m *MockConfirmer) Pending() bool {
	return m.reply != nil
}

// Answer resolves the pending confirmation.
func (m *MockConfirmer) Answer(ok bool) {
	reply := m.reply
	m.reply = nil
	if reply != nil {
		reply(ok)
	}
}
