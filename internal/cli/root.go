// Package cli wires configuration, logging, the task store and the UI into
// the tasklist command.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"tasklist/internal/config"
	"tasklist/internal/logging"
	"tasklist/internal/memstore"
	"tasklist/internal/seed"
	"tasklist/internal/storage"
	"tasklist/internal/task"
	"tasklist/internal/ui"
)

// runUIFunc starts the interactive UI. Tests replace it.
var runUIFunc = ui.Run

type options struct {
	ConfigPath string
	Backend    string
	Seed       string
	LogFile    string
	LogLevel   string
	Theme      string
}

// NewRootCommand builds the tasklist command.
func NewRootCommand(version string) *cobra.Command {
	var opts options

	root := &cobra.Command{
		Use:   "tasklist",
		Short: "Track tasks with priorities, statuses and deadlines",
		Long: `tasklist is a terminal task tracker. Tasks have a name, a priority,
a status and an optional deadline; deadlines within three days are
highlighted and overdue ones are flagged.

Tasks live in memory only and are gone when the program exits. Use
--seed to start with a list of tasks read from a YAML file.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.ConfigPath == "" {
				opts.ConfigPath = config.ResolveConfigPath()
			}
			return run(cmd, opts)
		},
	}

	f := root.Flags()
	f.StringVarP(&opts.ConfigPath, "config", "c", "", "config file (default $TASKLIST_CONFIG or user config dir)")
	f.StringVar(&opts.Backend, "backend", "", "task store: memory or sqlite")
	f.StringVar(&opts.Seed, "seed", "", "YAML file with tasks to start with")
	f.StringVar(&opts.LogFile, "log-file", "", "write logs to this file")
	f.StringVar(&opts.LogLevel, "log-level", "", "log level: debug, info, warn, error")
	f.StringVar(&opts.Theme, "theme", "", "colour theme: light or dark")

	return root
}

func run(cmd *cobra.Command, opts options) error {
	cfg, err := config.LoadOrCreate(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	applyFlags(&cfg, cmd, opts)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closeLog, err := logging.New(cfg.LogFile, logging.ParseLevel(cfg.LogLevel))
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	store, closeStore, err := openStore(cfg.Backend)
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.Backend, err)
	}
	defer func() { _ = closeStore.Close() }()
	logger.Info("store opened", "backend", cfg.Backend)

	if opts.Seed != "" {
		n, err := seed.Load(opts.Seed, store)
		if err != nil {
			return fmt.Errorf("load seed: %w", err)
		}
		logger.Info("seed loaded", "path", opts.Seed, "tasks", n)
	}

	return runUIFunc(store, cfg, logger)
}

func applyFlags(cfg *config.Config, cmd *cobra.Command, opts options) {
	flags := cmd.Flags()
	if flags.Changed("backend") {
		cfg.Backend = opts.Backend
	}
	if flags.Changed("log-file") {
		cfg.LogFile = opts.LogFile
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.LogLevel
	}
	if flags.Changed("theme") {
		cfg.Theme = opts.Theme
	}
}

func openStore(backend string) (task.Repository, io.Closer, error) {
	switch backend {
	case config.BackendSQLite:
		s, err := storage.Open()
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil
	default:
		return memstore.New(), closerFunc(func() error { return nil }), nil
	}
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }
