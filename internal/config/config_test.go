package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOrCreate_WritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", DefaultConfigFileName)

	cfg, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "backend")
	assert.Contains(t, string(data), BackendMemory)

	again, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestLoadOrCreate_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultConfigFileName)
	content := `
backend = "SQLite"
theme = "dark"

[keys]
quit = "x"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.Equal(t, BackendSQLite, cfg.Backend)
	assert.Equal(t, ThemeDark, cfg.Theme)
	assert.Equal(t, "x", cfg.Keys.Quit)
	assert.Equal(t, "a", cfg.Keys.Add)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadOrCreate_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad backend", `backend = "postgres"`, "unknown backend"},
		{"bad theme", `theme = "neon"`, "unknown theme"},
		{"bad toml", `backend = `, "parse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), DefaultConfigFileName)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			_, err := LoadOrCreate(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestResolveConfigPath_Env(t *testing.T) {
	t.Setenv(EnvConfigPath, "/tmp/custom.toml")
	assert.Equal(t, "/tmp/custom.toml", ResolveConfigPath())
}

func TestResolveConfigPath_UserDir(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	t.Setenv("HOME", "/tmp/home")
	got := ResolveConfigPath()
	assert.Equal(t, DefaultConfigFileName, filepath.Base(got))
	assert.Equal(t, "tasklist", filepath.Base(filepath.Dir(got)))
}
