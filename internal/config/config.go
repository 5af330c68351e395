package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultConfigFileName = "config.toml"
	EnvConfigPath         = "TASKLIST_CONFIG"

	BackendMemory = "memory"
	BackendSQLite = "sqlite"

	ThemeLight = "light"
	ThemeDark  = "dark"
)

type Keymap struct {
	Quit           string `toml:"quit"`
	Add            string `toml:"add"`
	Up             string `toml:"up"`
	Down           string `toml:"down"`
	Toggle         string `toml:"toggle"`
	Delete         string `toml:"delete"`
	Edit           string `toml:"edit"`
	Confirm        string `toml:"confirm"`
	Cancel         string `toml:"cancel"`
	NextField      string `toml:"next_field"`
	PrevField      string `toml:"prev_field"`
	FilterStatus   string `toml:"filter_status"`
	FilterPriority string `toml:"filter_priority"`
	ClearFilter    string `toml:"clear_filter"`
	Theme          string `toml:"theme"`
	Yes            string `toml:"yes"`
	No             string `toml:"no"`
}

type Config struct {
	Backend               string `toml:"backend"`
	LogFile               string `toml:"log_file"`
	LogLevel              string `toml:"log_level"`
	Theme                 string `toml:"theme"`
	DefaultStatusFilter   string `toml:"default_status_filter"`
	DefaultPriorityFilter string `toml:"default_priority_filter"`
	Keys                  Keymap `toml:"keys"`
}

// ResolveConfigPath returns $TASKLIST_CONFIG if set, otherwise
// <user config dir>/tasklist/config.toml, falling back to the working
// directory when no user config dir is known.
func ResolveConfigPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return DefaultConfigFileName
	}
	return filepath.Join(dir, "tasklist", DefaultConfigFileName)
}

// LoadOrCreate reads the config at path, writing the defaults there first
// if the file does not exist yet.
func LoadOrCreate(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.fillDefaults()
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch c.Backend {
	case BackendMemory, BackendSQLite:
	default:
		return fmt.Errorf("unknown backend %q (want %s or %s)", c.Backend, BackendMemory, BackendSQLite)
	}
	switch c.Theme {
	case ThemeLight, ThemeDark:
	default:
		return fmt.Errorf("unknown theme %q (want %s or %s)", c.Theme, ThemeLight, ThemeDark)
	}
	return nil
}

// fillDefaults restores fields an older or hand-edited file left empty.
func (c *Config) fillDefaults() {
	def := Default()
	c.Backend = strings.ToLower(strings.TrimSpace(c.Backend))
	c.Theme = strings.ToLower(strings.TrimSpace(c.Theme))
	orDefault(&c.Backend, def.Backend)
	orDefault(&c.LogLevel, def.LogLevel)
	orDefault(&c.Theme, def.Theme)
	k, d := &c.Keys, def.Keys
	orDefault(&k.Quit, d.Quit)
	orDefault(&k.Add, d.Add)
	orDefault(&k.Up, d.Up)
	orDefault(&k.Down, d.Down)
	orDefault(&k.Toggle, d.Toggle)
	orDefault(&k.Delete, d.Delete)
	orDefault(&k.Edit, d.Edit)
	orDefault(&k.Confirm, d.Confirm)
	orDefault(&k.Cancel, d.Cancel)
	orDefault(&k.NextField, d.NextField)
	orDefault(&k.PrevField, d.PrevField)
	orDefault(&k.FilterStatus, d.FilterStatus)
	orDefault(&k.FilterPriority, d.FilterPriority)
	orDefault(&k.ClearFilter, d.ClearFilter)
	orDefault(&k.Theme, d.Theme)
	orDefault(&k.Yes, d.Yes)
	orDefault(&k.No, d.No)
}

func orDefault(dst *string, def string) {
	if *dst == "" {
		*dst = def
	}
}

func write(path string, cfg Config) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func Default() Config {
	return Config{
		Backend:               BackendMemory,
		LogLevel:              "info",
		Theme:                 ThemeLight,
		DefaultStatusFilter:   "All",
		DefaultPriorityFilter: "All",
		Keys: Keymap{
			Quit:           "q",
			Add:            "a",
			Up:             "k",
			Down:           "j",
			Toggle:         " ",
			Delete:         "d",
			Edit:           "e",
			Confirm:        "enter",
			Cancel:         "esc",
			NextField:      "tab",
			PrevField:      "shift+tab",
			FilterStatus:   "s",
			FilterPriority: "p",
			ClearFilter:    "c",
			Theme:          "t",
			Yes:            "y",
			No:             "n",
		},
	}
}
