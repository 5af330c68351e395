package cli

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasklist/internal/config"
	"tasklist/internal/memstore"
	"tasklist/internal/storage"
	"tasklist/internal/task"
)

type uiCall struct {
	store task.Repository
	cfg   config.Config
	tasks []task.Task
}

// stubUI replaces the interactive UI for the duration of the test and
// records what it was started with.
func stubUI(t *testing.T) *uiCall {
	t.Helper()
	call := &uiCall{}
	orig := runUIFunc
	runUIFunc = func(store task.Repository, cfg config.Config, _ *slog.Logger) error {
		call.store = store
		call.cfg = cfg
		list, err := store.List()
		require.NoError(t, err)
		call.tasks = list
		return nil
	}
	t.Cleanup(func() { runUIFunc = orig })
	return call
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand("test")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRoot_DefaultsToMemoryStore(t *testing.T) {
	call := stubUI(t)
	cfgPath := filepath.Join(t.TempDir(), "config.toml")

	_, err := execute(t, "--config", cfgPath)
	require.NoError(t, err)

	assert.IsType(t, &memstore.Store{}, call.store)
	assert.Equal(t, config.BackendMemory, call.cfg.Backend)
	assert.FileExists(t, cfgPath)
}

func TestRoot_SQLiteBackendWithSeed(t *testing.T) {
	call := stubUI(t)
	dir := t.TempDir()
	seedPath := filepath.Join(dir, "seed.yaml")
	require.NoError(t, os.WriteFile(seedPath, []byte(`
tasks:
  - name: Write spec
    priority: High
    deadline: 2026-10-18
  - name: Review
    status: In Progress
`), 0o644))

	_, err := execute(t, "--config", filepath.Join(dir, "config.toml"), "--backend", "sqlite", "--seed", seedPath)
	require.NoError(t, err)

	assert.IsType(t, &storage.Store{}, call.store)
	require.Len(t, call.tasks, 2)
	assert.Equal(t, "Write spec", call.tasks[0].Name)
	assert.Equal(t, task.PriorityHigh, call.tasks[0].Priority)
	assert.Equal(t, task.StatusInProgress, call.tasks[1].Status)
}

func TestRoot_FlagsOverrideConfig(t *testing.T) {
	call := stubUI(t)
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("theme = \"light\"\nlog_level = \"info\"\n"), 0o644))
	logPath := filepath.Join(dir, "tasklist.log")

	_, err := execute(t, "--config", cfgPath, "--theme", "dark", "--log-file", logPath, "--log-level", "debug")
	require.NoError(t, err)

	assert.Equal(t, config.ThemeDark, call.cfg.Theme)
	assert.Equal(t, "debug", call.cfg.LogLevel)
	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "store opened")
}

func TestRoot_Errors(t *testing.T) {
	stubUI(t)
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")

	_, err := execute(t, "--config", cfgPath, "--backend", "postgres")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown backend")

	_, err = execute(t, "--config", cfgPath, "--seed", filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load seed")

	_, err = execute(t, "--config", cfgPath, "extra")
	assert.Error(t, err)
}

func TestRoot_HelpAndVersion(t *testing.T) {
	out, err := execute(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "--seed")
	assert.Contains(t, out, "--backend")

	out, err = execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "test")
}
