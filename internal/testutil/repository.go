// Package testutil provides shared test helpers and test doubles.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasklist/internal/task"
)

// RepositoryContract checks the behaviour every task.Repository must have.
// newRepo must return an empty repository on each call.
func RepositoryContract(t *testing.T, newRepo func(t *testing.T) task.Repository) {
	t.Helper()

	t.Run("add assigns distinct ids", func(t *testing.T) {
		repo := newRepo(t)
		seen := map[task.ID]bool{}
		for i, name := range []string{"a", "b", "c"} {
			d := task.NewDraft()
			d.Name = name
			added, err := repo.Add(d)
			require.NoError(t, err)
			assert.False(t, seen[added.ID], "id %d reused", added.ID)
			seen[added.ID] = true

			list, err := repo.List()
			require.NoError(t, err)
			assert.Len(t, list, i+1)
		}
	})

	t.Run("add keeps draft fields", func(t *testing.T) {
		repo := newRepo(t)
		d := task.Draft{
			Name:     "Write spec",
			Priority: task.PriorityHigh,
			Status:   task.StatusInProgress,
			Deadline: task.Date{Year: 2026, Month: 10, Day: 18},
		}
		added, err := repo.Add(d)
		require.NoError(t, err)
		assert.Equal(t, d, added.Draft())

		list, err := repo.List()
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, added, list[0])
	})

	t.Run("list keeps insertion order", func(t *testing.T) {
		repo := newRepo(t)
		names := []string{"first", "second", "third"}
		for _, n := range names {
			d := task.NewDraft()
			d.Name = n
			_, err := repo.Add(d)
			require.NoError(t, err)
		}
		list, err := repo.List()
		require.NoError(t, err)
		require.Len(t, list, 3)
		for i, n := range names {
			assert.Equal(t, n, list[i].Name)
		}
	})

	t.Run("update replaces in place", func(t *testing.T) {
		repo := newRepo(t)
		var ids []task.ID
		for _, n := range []string{"a", "b", "c"} {
			d := task.NewDraft()
			d.Name = n
			added, err := repo.Add(d)
			require.NoError(t, err)
			ids = append(ids, added.ID)
		}

		changed := task.Task{
			ID:       ids[1],
			Name:     "b2",
			Priority: task.PriorityLow,
			Status:   task.StatusDone,
			Deadline: task.Date{Year: 2027, Month: 1, Day: 2},
		}
		require.NoError(t, repo.Update(changed))

		list, err := repo.List()
		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.Equal(t, changed, list[1])
		assert.Equal(t, "a", list[0].Name)
		assert.Equal(t, "c", list[2].Name)
	})

	t.Run("update clears deadline", func(t *testing.T) {
		repo := newRepo(t)
		d := task.NewDraft()
		d.Name = "a"
		d.Deadline = task.Date{Year: 2026, Month: 10, Day: 18}
		added, err := repo.Add(d)
		require.NoError(t, err)

		added.Deadline = task.Date{}
		require.NoError(t, repo.Update(added))

		list, err := repo.List()
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.True(t, list[0].Deadline.IsZero())
	})

	t.Run("update missing task", func(t *testing.T) {
		repo := newRepo(t)
		err := repo.Update(task.Task{ID: 42, Name: "ghost", Priority: task.PriorityLow, Status: task.StatusTodo})
		assert.ErrorIs(t, err, task.ErrTaskNotFound)

		list, err := repo.List()
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("remove", func(t *testing.T) {
		repo := newRepo(t)
		var ids []task.ID
		for _, n := range []string{"a", "b"} {
			d := task.NewDraft()
			d.Name = n
			added, err := repo.Add(d)
			require.NoError(t, err)
			ids = append(ids, added.ID)
		}

		require.NoError(t, repo.Remove(ids[0]))
		list, err := repo.List()
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, ids[1], list[0].ID)

		require.NoError(t, repo.Remove(ids[0]))
		list, err = repo.List()
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("ids are not reused after remove", func(t *testing.T) {
		repo := newRepo(t)
		d := task.NewDraft()
		d.Name = "a"
		first, err := repo.Add(d)
		require.NoError(t, err)
		require.NoError(t, repo.Remove(first.ID))

		second, err := repo.Add(d)
		require.NoError(t, err)
		assert.Greater(t, second.ID, first.ID)
	})

	t.Run("list returns a copy", func(t *testing.T) {
		repo := newRepo(t)
		d := task.NewDraft()
		d.Name = "a"
		_, err := repo.Add(d)
		require.NoError(t, err)

		list, err := repo.List()
		require.NoError(t, err)
		list[0].Name = "mutated"

		again, err := repo.List()
		require.NoError(t, err)
		assert.Equal(t, "a", again[0].Name)
	})
}
