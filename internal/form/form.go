// Package form holds the draft behind the add/edit surface and commits it to
// a task.Repository. Deletes go through an explicit confirmation step.
package form

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"tasklist/internal/task"
)

type Kind int

const (
	KindInfo Kind = iota
	KindSuccess
	KindWarning
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindWarning:
		return "warning"
	case KindError:
		return "error"
	default:
		return "info"
	}
}

// Notifier shows short feedback to the user.
type Notifier interface {
	Notify(message string, kind Kind)
}

// Confirmer asks the user a yes/no question. reply is called once with the
// answer, possibly long after Confirm has returned.
type Confirmer interface {
	Confirm(message string, reply func(ok bool))
}

// Field names accepted by SetField.
const (
	FieldName     = "name"
	FieldPriority = "priority"
	FieldStatus   = "status"
	FieldDeadline = "deadline"
)

// Fields lists the editable fields in form order.
func Fields() []string {
	return []string{FieldName, FieldPriority, FieldStatus, FieldDeadline}
}

const (
	deleteQuestion = "Are you sure? You won't be able to revert this!"
	deletedMessage = "Your task has been deleted."
)

type Controller struct {
	store   task.Repository
	confirm Confirmer
	notify  Notifier
	log     *slog.Logger

	draft   task.Draft
	editing task.ID
}

func New(store task.Repository, confirm Confirmer, notify Notifier, log *slog.Logger) *Controller {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Controller{
		store:   store,
		confirm: confirm,
		notify:  notify,
		log:     log,
		draft:   task.NewDraft(),
	}
}

// Begin switches to create mode with a fresh draft.
func (c *Controller) Begin() {
	c.reset()
}

// Edit switches to edit mode with a draft copied from t.
func (c *Controller) Edit(t task.Task) {
	c.editing = t.ID
	c.draft = t.Draft()
}

func (c *Controller) Cancel() {
	c.reset()
}

func (c *Controller) Editing() bool {
	return c.editing != 0
}

func (c *Controller) Draft() task.Draft {
	return c.draft
}

func (c *Controller) SetName(name string) {
	c.draft.Name = name
}

func (c *Controller) SetPriority(p task.Priority) {
	c.draft.Priority = p
}

func (c *Controller) SetStatus(s task.Status) {
	c.draft.Status = s
}

func (c *Controller) SetDeadline(d task.Date) {
	c.draft.Deadline = d
}

// SetField parses value into the named field. On a parse error the draft is
// left as it was and the error is reported to the user.
func (c *Controller) SetField(field, value string) error {
	var err error
	switch field {
	case FieldName:
		c.SetName(value)
	case FieldPriority:
		var p task.Priority
		if p, err = task.ParsePriority(value); err == nil {
			c.SetPriority(p)
		}
	case FieldStatus:
		var s task.Status
		if s, err = task.ParseStatus(value); err == nil {
			c.SetStatus(s)
		}
	case FieldDeadline:
		var d task.Date
		if d, err = task.ParseDate(value); err == nil {
			c.SetDeadline(d)
		}
	default:
		err = fmt.Errorf("unknown field %q", field)
	}
	if err != nil {
		c.notify.Notify(err.Error(), KindError)
	}
	return err
}

// FieldValue returns the draft's field as it would be typed into the form.
func (c *Controller) FieldValue(field string) string {
	switch field {
	case FieldName:
		return c.draft.Name
	case FieldPriority:
		return c.draft.Priority.String()
	case FieldStatus:
		return c.draft.Status.String()
	case FieldDeadline:
		return c.draft.Deadline.String()
	}
	return ""
}

// Submit validates the draft and commits it. On success the draft is reset
// and the caller should close the form.
func (c *Controller) Submit() error {
	d := c.draft
	d.Name = strings.TrimSpace(d.Name)
	if err := d.Validate(); err != nil {
		c.notify.Notify(validationMessage(err), KindError)
		c.log.Debug("submit rejected", "error", err)
		return err
	}

	if c.Editing() {
		t := task.New(c.editing, d)
		if err := c.store.Update(t); err != nil {
			if errors.Is(err, task.ErrTaskNotFound) {
				c.notify.Notify("Task no longer exists", KindWarning)
				c.log.Warn("update of missing task", "id", t.ID)
				c.reset()
				return err
			}
			c.notify.Notify(fmt.Sprintf("save failed: %v", err), KindError)
			c.log.Error("update task", "id", t.ID, "error", err)
			return err
		}
		c.log.Info("task updated", "id", t.ID, "name", t.Name)
		c.notify.Notify("Task updated", KindSuccess)
	} else {
		t, err := c.store.Add(d)
		if err != nil {
			c.notify.Notify(fmt.Sprintf("save failed: %v", err), KindError)
			c.log.Error("add task", "error", err)
			return err
		}
		c.log.Info("task added", "id", t.ID, "name", t.Name)
		c.notify.Notify("Task added", KindSuccess)
	}
	c.reset()
	return nil
}

// Delete asks for confirmation and removes the task only on a yes.
func (c *Controller) Delete(t task.Task) {
	c.confirm.Confirm(fmt.Sprintf("Delete %q? %s", t.Name, deleteQuestion), func(ok bool) {
		if !ok {
			c.notify.Notify("Delete cancelled", KindInfo)
			return
		}
		if err := c.store.Remove(t.ID); err != nil {
			c.notify.Notify(fmt.Sprintf("delete failed: %v", err), KindError)
			c.log.Error("remove task", "id", t.ID, "error", err)
			return
		}
		c.log.Info("task deleted", "id", t.ID)
		c.notify.Notify(deletedMessage, KindSuccess)
	})
}

// ToggleDone marks t Done, or back to To Do when it already is.
func (c *Controller) ToggleDone(t task.Task) error {
	if t.Status == task.StatusDone {
		t.Status = task.StatusTodo
	} else {
		t.Status = task.StatusDone
	}
	if err := c.store.Update(t); err != nil {
		kind := KindError
		if errors.Is(err, task.ErrTaskNotFound) {
			kind = KindWarning
		}
		c.notify.Notify(fmt.Sprintf("toggle failed: %v", err), kind)
		return err
	}
	c.log.Info("task status changed", "id", t.ID, "status", t.Status)
	c.notify.Notify(fmt.Sprintf("%q is now %s", t.Name, t.Status), KindSuccess)
	return nil
}

func (c *Controller) reset() {
	c.editing = 0
	c.draft = task.NewDraft()
}

func validationMessage(err error) string {
	if errors.Is(err, task.ErrEmptyName) {
		return "Task name cannot be empty!"
	}
	return err.Error()
}
