package memstore

import (
	"testing"

	"tasklist/internal/task"
	"tasklist/internal/testutil"
)

func TestStore_Contract(t *testing.T) {
	testutil.RepositoryContract(t, func(*testing.T) task.Repository {
		return New()
	})
}
