package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvAPIBase, EnvCohort, EnvLogDir} {
		t.Setenv(key, "")
	}
}

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	clearEnv(t)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"), Overrides{})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIBase != defaultAPIBase {
		t.Fatalf("APIBase = %q, want %q", cfg.APIBase, defaultAPIBase)
	}
	if cfg.Cohort != defaultCohort {
		t.Fatalf("Cohort = %q, want %q", cfg.Cohort, defaultCohort)
	}

	wantLogDir, err := expandPath(defaultLogDir)
	if err != nil {
		t.Fatalf("expandPath(defaultLogDir) returned error: %v", err)
	}
	if cfg.LogDir != wantLogDir {
		t.Fatalf("LogDir = %q, want %q", cfg.LogDir, wantLogDir)
	}
	if cfg.LogPath() != filepath.Join(wantLogDir, "roster.log") {
		t.Fatalf("LogPath = %q, want %q", cfg.LogPath(), filepath.Join(wantLogDir, "roster.log"))
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
api_base = "  http://localhost:3000/  "
cohort = "  my-cohort  "
log_dir = "  ~/.roster/logs  "
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path, Overrides{})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIBase != "http://localhost:3000" {
		t.Fatalf("APIBase = %q, want trailing slash trimmed", cfg.APIBase)
	}
	if cfg.Cohort != "my-cohort" {
		t.Fatalf("Cohort = %q, want my-cohort", cfg.Cohort)
	}
	if !strings.HasPrefix(cfg.LogDir, home) {
		t.Fatalf("LogDir = %q, want it under HOME %q", cfg.LogDir, home)
	}
	if got := cfg.CollectionURL(); got != "http://localhost:3000/api/my-cohort/players" {
		t.Fatalf("CollectionURL = %q", got)
	}
}

func TestLoad_PrecedenceFlagsOverEnvOverFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
api_base = "http://file"
cohort = "file-cohort"
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	t.Setenv(EnvAPIBase, "http://env")
	t.Setenv(EnvCohort, "env-cohort")

	cfg, err := Load(path, Overrides{Cohort: "flag-cohort"})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIBase != "http://env" {
		t.Fatalf("APIBase = %q, want env value", cfg.APIBase)
	}
	if cfg.Cohort != "flag-cohort" {
		t.Fatalf("Cohort = %q, want flag value", cfg.Cohort)
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
api_base = "   "
cohort = ""
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path, Overrides{})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIBase != defaultAPIBase || cfg.Cohort != defaultCohort {
		t.Fatalf("cfg = %#v, want defaults", cfg)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`api_base = [`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path, Overrides{})
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestLoadDotEnv_MissingFileIsNotAnError(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), ".env")); err != nil {
		t.Fatalf("LoadDotEnv returned error: %v", err)
	}
}

func TestLoadDotEnv_DoesNotOverrideExistingEnv(t *testing.T) {
	t.Setenv(EnvCohort, "already-set")
	t.Setenv(EnvAPIBase, "")
	os.Unsetenv(EnvAPIBase)

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("ROSTER_COHORT=from-file\nROSTER_API_BASE=http://dotenv\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("LoadDotEnv returned error: %v", err)
	}
	if got := os.Getenv(EnvCohort); got != "already-set" {
		t.Fatalf("%s = %q, want already-set", EnvCohort, got)
	}
	if got := os.Getenv(EnvAPIBase); got != "http://dotenv" {
		t.Fatalf("%s = %q, want http://dotenv", EnvAPIBase, got)
	}
}

func TestCollectionURL_DefaultsWhenEmpty(t *testing.T) {
	var cfg Config
	want := defaultAPIBase + "/api/" + defaultCohort + "/players"
	if got := cfg.CollectionURL(); got != want {
		t.Fatalf("CollectionURL = %q, want %q", got, want)
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
