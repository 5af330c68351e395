// Package storage implements task.Repository on an in-memory SQLite
// database. The database lives on a single connection and disappears when
// the Store is closed.
package storage

import (
	"database/sql"
	"fmt"
	"net/url"
	"sync/atomic"

	_ "modernc.org/sqlite"

	"tasklist/internal/task"
)

var _ task.Repository = (*Store)(nil)

var dbSeq atomic.Int64

type Store struct {
	db *sql.DB
}

func Open() (*Store, error) {
	db, err := sql.Open("sqlite", sqliteDSN(fmt.Sprintf("tasklist-%d", dbSeq.Add(1))))
	if err != nil {
		return nil, err
	}
	// A memory database belongs to the connection that created it, so the
	// pool must never open a second one or retire the first.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	const ddl = `
CREATE TABLE IF NOT EXISTS tasks (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL CHECK (name <> ''),
	priority TEXT NOT NULL CHECK (priority IN ('Low', 'Medium', 'High')),
	status TEXT NOT NULL CHECK (status IN ('To Do', 'In Progress', 'Done')),
	deadline TEXT DEFAULT NULL
);`
	if _, err := s.db.Exec(ddl); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

func (s *Store) List() ([]task.Task, error) {
	rows, err := s.db.Query(`SELECT id, name, priority, status, deadline FROM tasks ORDER BY id;`)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []task.Task
	for rows.Next() {
		var t task.Task
		var id int64
		var priority, status string
		var deadline sql.NullString
		if err := rows.Scan(&id, &t.Name, &priority, &status, &deadline); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		t.ID = task.ID(id)
		t.Priority = task.Priority(priority)
		t.Status = task.Status(status)
		if deadline.Valid {
			d, err := task.ParseDate(deadline.String)
			if err != nil {
				return nil, fmt.Errorf("task %d: %w", t.ID, err)
			}
			t.Deadline = d
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

func (s *Store) Add(d task.Draft) (task.Task, error) {
	res, err := s.db.Exec(`INSERT INTO tasks (name, priority, status, deadline) VALUES (?, ?, ?, ?);`,
		d.Name, string(d.Priority), string(d.Status), deadlineValue(d.Deadline))
	if err != nil {
		return task.Task{}, fmt.Errorf("insert task: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return task.Task{}, fmt.Errorf("insert task: %w", err)
	}
	return task.New(task.ID(id), d), nil
}

func (s *Store) Update(t task.Task) error {
	res, err := s.db.Exec(`UPDATE tasks SET name = ?, priority = ?, status = ?, deadline = ? WHERE id = ?;`,
		t.Name, string(t.Priority), string(t.Status), deadlineValue(t.Deadline), int64(t.ID))
	if err != nil {
		return fmt.Errorf("update task %d: %w", t.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update task %d: %w", t.ID, err)
	}
	if n == 0 {
		return task.ErrTaskNotFound
	}
	return nil
}

func (s *Store) Remove(id task.ID) error {
	if _, err := s.db.Exec(`DELETE FROM tasks WHERE id = ?;`, int64(id)); err != nil {
		return fmt.Errorf("delete task %d: %w", id, err)
	}
	return nil
}

func deadlineValue(d task.Date) sql.NullString {
	if d.IsZero() {
		return sql.NullString{}
	}
	return sql.NullString{String: d.String(), Valid: true}
}

func sqliteDSN(name string) string {
	u := url.URL{
		Scheme: "file",
		Opaque: url.PathEscape(name),
	}
	q := u.Query()
	q.Set("mode", "memory")
	q.Set("_pragma", "busy_timeout(5000)")
	u.RawQuery = q.Encode()
	return u.String()
}
