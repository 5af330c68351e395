// Package task holds the task model together with the pure rules applied to
// it: filtering and deadline proximity.
package task

import (
	"fmt"
	"strings"
)

// ID identifies a task within a store. IDs are assigned in increasing order
// and never reused.
type ID int64

type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Priorities lists the valid priorities, lowest first.
func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

func (p Priority) String() string { return string(p) }

func ParsePriority(v string) (Priority, error) {
	switch normalize(v) {
	case "low":
		return PriorityLow, nil
	case "medium", "med":
		return PriorityMedium, nil
	case "high":
		return PriorityHigh, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPriority, v)
}

type Status string

const (
	StatusTodo       Status = "To Do"
	StatusInProgress Status = "In Progress"
	StatusDone       Status = "Done"
)

// Statuses lists the valid statuses in workflow order.
func Statuses() []Status {
	return []Status{StatusTodo, StatusInProgress, StatusDone}
}

func (s Status) IsValid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

func (s Status) String() string { return string(s) }

func ParseStatus(v string) (Status, error) {
	switch normalize(v) {
	case "todo":
		return StatusTodo, nil
	case "inprogress", "doing":
		return StatusInProgress, nil
	case "done":
		return StatusDone, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, v)
}

// normalize lowercases v and drops separators so "In Progress",
// "in_progress" and "inprogress" compare equal.
func normalize(v string) string {
	v = strings.ToLower(strings.TrimSpace(v))
	return strings.NewReplacer(" ", "", "_", "", "-", "").Replace(v)
}

// Draft is the editable part of a task: everything but the ID.
type Draft struct {
	Name     string
	Priority Priority
	Status   Status
	Deadline Date
}

// NewDraft returns a draft carrying the defaults for a new task.
func NewDraft() Draft {
	return Draft{
		Priority: PriorityMedium,
		Status:   StatusTodo,
	}
}

// Validate reports the first rule the draft breaks, if any.
func (d Draft) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return ErrEmptyName
	}
	if !d.Priority.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, d.Priority)
	}
	if !d.Status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, d.Status)
	}
	return nil
}

type Task struct {
	ID       ID
	Name     string
	Priority Priority
	Status   Status
	Deadline Date
}

// New builds a task from a draft under the given id.
func New(id ID, d Draft) Task {
	return Task{
		ID:       id,
		Name:     d.Name,
		Priority: d.Priority,
		Status:   d.Status,
		Deadline: d.Deadline,
	}
}

func (t Task) Draft() Draft {
	return Draft{
		Name:     t.Name,
		Priority: t.Priority,
		Status:   t.Status,
		Deadline: t.Deadline,
	}
}

// Repository owns the ordered task collection.
type Repository interface {
	// Add appends a new task built from d and returns it.
	Add(d Draft) (Task, error)
	// Update replaces the task with t.ID in place. It returns
	// ErrTaskNotFound when no such task exists.
	Update(t Task) error
	// Remove deletes the task with id. Removing a missing id is a no-op.
	Remove(id ID) error
	// List returns a copy of all tasks in insertion order.
	List() ([]Task, error)
}
