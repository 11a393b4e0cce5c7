package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/roster/internal/config"
	"github.com/five82/roster/internal/prefs"
	"github.com/five82/roster/internal/puppybowl"
	"github.com/five82/roster/internal/roster"
	"github.com/five82/roster/internal/state"
	"github.com/five82/roster/internal/ui"
)

const defaultEnvFile = ".env"

// Options configure the roster application.
type Options struct {
	ConfigPath string // empty uses ~/.config/roster/config.toml
	PrefsPath  string // empty uses ~/.config/roster/prefs.toml
	EnvFile    string // empty uses ./.env
	Overrides  config.Overrides
}

// Env is everything an entry point needs to talk to the players API.
type Env struct {
	Config config.Config
	API    *roster.API
	Logger *log.Logger
}

// LoadConfig loads the dotenv file and resolves configuration.
func LoadConfig(opts Options) (config.Config, error) {
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = defaultEnvFile
	}
	if err := config.LoadDotEnv(envFile); err != nil {
		return config.Config{}, err
	}

	cfg, err := config.Load(opts.ConfigPath, opts.Overrides)
	if err != nil {
		return config.Config{}, fmt.Errorf("load roster config: %w", err)
	}
	return cfg, nil
}

// NewAPI builds the roster API for cfg. It logs through logger, or the
// standard logger when nil.
func NewAPI(cfg config.Config, logger *log.Logger) (*roster.API, error) {
	client, err := puppybowl.NewClient(cfg.CollectionURL())
	if err != nil {
		return nil, fmt.Errorf("init players client: %w", err)
	}
	return roster.New(client, logger), nil
}

// Load resolves configuration and builds the API without opening a log.
func Load(opts Options, logger *log.Logger) (Env, error) {
	cfg, err := LoadConfig(opts)
	if err != nil {
		return Env{}, err
	}
	if logger == nil {
		logger = log.Default()
	}
	api, err := NewAPI(cfg, logger)
	if err != nil {
		return Env{}, err
	}
	return Env{Config: cfg, API: api, Logger: logger}, nil
}

// OpenLog opens the roster log for appending, creating its directory. When
// the file cannot be opened the returned logger writes to fallback instead.
func OpenLog(cfg config.Config, fallback io.Writer) (*log.Logger, func()) {
	path := cfg.LogPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
		if f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); err == nil {
			return log.New(f, "", log.LstdFlags), func() { _ = f.Close() }
		}
	}
	return log.New(fallback, "roster: ", log.LstdFlags), func() {}
}

// Run boots the roster TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	env, err := Load(opts, nil)
	if err != nil {
		return err
	}

	logPath := env.Config.LogPath()
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}
	// Anything written to the standard logger would corrupt the screen.
	logFile, err := tea.LogToFile(logPath, "")
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer logFile.Close()
	log.SetFlags(log.LstdFlags)

	userPrefs := prefs.Load(opts.PrefsPath)

	uiOpts := ui.Options{
		Context:   ctx,
		API:       env.API,
		Page:      &state.Page{},
		Config:    &env.Config,
		Logger:    log.Default(),
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
		ShowLogs:  userPrefs.ShowLogs,
	}
	if err := ui.Run(uiOpts); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}
