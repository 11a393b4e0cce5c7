package config

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Config captures where the players collection lives and where roster logs.
type Config struct {
	APIBase string
	Cohort  string
	LogDir  string
}

const (
	defaultConfigPath = "~/.config/roster/config.toml"
	defaultLogDir     = "~/.local/share/roster"
	defaultAPIBase    = "https://fsa-puppy-bowl.herokuapp.com"
	defaultCohort     = "2302-ACC-CT-WEB-PT-A"
	logFileName       = "roster.log"
)

// Environment variables that override the config file.
const (
	EnvAPIBase = "ROSTER_API_BASE"
	EnvCohort  = "ROSTER_COHORT"
	EnvLogDir  = "ROSTER_LOG_DIR"
)

// Overrides carry command-line values; empty fields are ignored.
type Overrides struct {
	APIBase string
	Cohort  string
}

// Default returns the built-in configuration with paths expanded.
func Default() Config {
	return Config{
		APIBase: defaultAPIBase,
		Cohort:  defaultCohort,
		LogDir:  mustExpand(defaultLogDir),
	}
}

// LoadDotEnv loads environment variables from a .env file if present.
// Variables already set in the environment win.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("stat env file: %w", err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file: %w", err)
	}
	return nil
}

// Load reads the config file, applies environment overrides and then the
// given command-line overrides. A missing file is not an error.
func Load(path string, overrides Overrides) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()
	if err := readFile(resolved, &cfg); err != nil {
		return Config{}, err
	}

	applyEnv(&cfg)

	if v := strings.TrimSpace(overrides.APIBase); v != "" {
		cfg.APIBase = v
	}
	if v := strings.TrimSpace(overrides.Cohort); v != "" {
		cfg.Cohort = v
	}

	cfg.APIBase = strings.TrimRight(cfg.APIBase, "/")
	cfg.LogDir = mustExpand(cfg.LogDir)
	return cfg, nil
}

// CollectionURL returns https://<host>/api/<cohort>/players.
func (c Config) CollectionURL() string {
	base := strings.TrimRight(strings.TrimSpace(c.APIBase), "/")
	if base == "" {
		base = defaultAPIBase
	}
	cohort := strings.TrimSpace(c.Cohort)
	if cohort == "" {
		cohort = defaultCohort
	}
	return base + "/api/" + url.PathEscape(cohort) + "/players"
}

// LogPath returns the path to the roster log file.
func (c Config) LogPath() string {
	if strings.TrimSpace(c.LogDir) == "" {
		return filepath.Join(mustExpand(defaultLogDir), logFileName)
	}
	return filepath.Join(c.LogDir, logFileName)
}

func readFile(path string, cfg *Config) error {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIBase string `toml:"api_base"`
		Cohort  string `toml:"cohort"`
		LogDir  string `toml:"log_dir"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.APIBase); v != "" {
		cfg.APIBase = v
	}
	if v := strings.TrimSpace(raw.Cohort); v != "" {
		cfg.Cohort = v
	}
	if v := strings.TrimSpace(raw.LogDir); v != "" {
		cfg.LogDir = v
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(EnvAPIBase)); v != "" {
		cfg.APIBase = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvCohort)); v != "" {
		cfg.Cohort = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogDir)); v != "" {
		cfg.LogDir = v
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
