// Package seed reads a YAML list of tasks used to pre-fill the store at
// startup.
//
// Format:
//
//	tasks:
//	  - name: Write spec
//	    priority: High
//	    status: To Do
//	    deadline: 2026-10-18
//
// priority, status and deadline are optional and default as they do in the
// add form.
package seed

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"tasklist/internal/task"
)

var ErrNoTasks = errors.New("seed file contains no tasks")

type file struct {
	Tasks []entry `yaml:"tasks"`
}

type entry struct {
	Name     string `yaml:"name"`
	Priority string `yaml:"priority"`
	Status   string `yaml:"status"`
	Deadline string `yaml:"deadline"`
}

// Parse decodes and validates seed entries.
func Parse(r io.Reader) ([]task.Draft, error) {
	var f file
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoTasks
		}
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	if len(f.Tasks) == 0 {
		return nil, ErrNoTasks
	}

	drafts := make([]task.Draft, 0, len(f.Tasks))
	for i, e := range f.Tasks {
		d, err := e.draft()
		if err != nil {
			return nil, fmt.Errorf("task %d: %w", i+1, err)
		}
		drafts = append(drafts, d)
	}
	return drafts, nil
}

// Load parses the seed file at path and adds every task to repo in file
// order. It returns the number of tasks added.
func Load(path string, repo task.Repository) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	drafts, err := Parse(f)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	for i, d := range drafts {
		if _, err := repo.Add(d); err != nil {
			return i, fmt.Errorf("add seed task %d: %w", i+1, err)
		}
	}
	return len(drafts), nil
}

func (e entry) draft() (task.Draft, error) {
	d := task.NewDraft()
	d.Name = strings.TrimSpace(e.Name)
	var err error
	if e.Priority != "" {
		if d.Priority, err = task.ParsePriority(e.Priority); err != nil {
			return d, err
		}
	}
	if e.Status != "" {
		if d.Status, err = task.ParseStatus(e.Status); err != nil {
			return d, err
		}
	}
	if d.Deadline, err = task.ParseDate(e.Deadline); err != nil {
		return d, err
	}
	return d, d.Validate()
}
