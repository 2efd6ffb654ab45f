package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/five82/studentsearch/internal/student"
)

func isolateEnv(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, key := range []string{EnvDebounceMs, EnvSeedFile, EnvLogFile, EnvLogLevel} {
		t.Setenv(key, "")
	}
	return home
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := isolateEnv(t)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Debounce != 120*time.Millisecond {
		t.Fatalf("Debounce = %v, want 120ms", cfg.Debounce)
	}
	if cfg.DefaultBranch != student.BranchCSE {
		t.Fatalf("DefaultBranch = %q, want CSE", cfg.DefaultBranch)
	}
	wantLog, err := expandPath(defaultLogFile)
	if err != nil {
		t.Fatalf("expandPath(defaultLogFile) returned error: %v", err)
	}
	if cfg.LogFile != wantLog {
		t.Fatalf("LogFile = %q, want %q", cfg.LogFile, wantLog)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.SeedFile != "" {
		t.Fatalf("SeedFile = %q, want empty", cfg.SeedFile)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := isolateEnv(t)

	path := writeConfig(t, `
debounce_ms = 250
default_branch = " ece "
seed_file = "  ~/roster.yaml  "
log_file = "  ~/logs/ss.log "
log_level = " DEBUG "
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Debounce != 250*time.Millisecond {
		t.Fatalf("Debounce = %v, want 250ms", cfg.Debounce)
	}
	if cfg.DefaultBranch != student.BranchECE {
		t.Fatalf("DefaultBranch = %q, want ECE", cfg.DefaultBranch)
	}
	if cfg.SeedFile != filepath.Join(home, "roster.yaml") {
		t.Fatalf("SeedFile = %q, want it under HOME %q", cfg.SeedFile, home)
	}
	if !strings.HasPrefix(cfg.LogFile, home) {
		t.Fatalf("LogFile = %q, want it under HOME %q", cfg.LogFile, home)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestLoad_ZeroDebounceIsKept(t *testing.T) {
	isolateEnv(t)
	path := writeConfig(t, "debounce_ms = 0\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Debounce != 0 {
		t.Fatalf("Debounce = %v, want 0", cfg.Debounce)
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	isolateEnv(t)
	path := writeConfig(t, `
default_branch = "   "
log_file = ""
log_level = ""
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	def := Default()
	if cfg != def {
		t.Fatalf("Load = %#v, want defaults %#v", cfg, def)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	isolateEnv(t)
	path := writeConfig(t, `debounce_ms = [`)

	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestLoad_RejectsUnknownBranchAndNegativeDebounce(t *testing.T) {
	isolateEnv(t)

	for _, body := range []string{`default_branch = "CIVIL"`, `debounce_ms = -5`} {
		if _, err := Load(writeConfig(t, body)); err == nil {
			t.Fatalf("Load(%q) returned nil error", body)
		}
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	home := isolateEnv(t)
	path := writeConfig(t, `
debounce_ms = 250
log_level = "warn"
`)
	t.Setenv(EnvDebounceMs, "40")
	t.Setenv(EnvLogLevel, "Error")
	t.Setenv(EnvSeedFile, "~/seed.yaml")
	t.Setenv(EnvLogFile, "~/x.log")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Debounce != 40*time.Millisecond {
		t.Fatalf("Debounce = %v, want 40ms", cfg.Debounce)
	}
	if cfg.LogLevel != "error" {
		t.Fatalf("LogLevel = %q, want error", cfg.LogLevel)
	}
	if cfg.SeedFile != filepath.Join(home, "seed.yaml") {
		t.Fatalf("SeedFile = %q", cfg.SeedFile)
	}
	if cfg.LogFile != filepath.Join(home, "x.log") {
		t.Fatalf("LogFile = %q", cfg.LogFile)
	}
}

func TestLoad_InvalidEnvDebounce(t *testing.T) {
	isolateEnv(t)
	t.Setenv(EnvDebounceMs, "soon")

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil || !strings.Contains(err.Error(), EnvDebounceMs) {
		t.Fatalf("Load error = %v, want it to mention %s", err, EnvDebounceMs)
	}
}

func TestLoadDotEnv_DoesNotOverrideExisting(t *testing.T) {
	isolateEnv(t)
	t.Setenv(EnvLogLevel, "warn")
	os.Unsetenv(EnvDebounceMs)

	path := filepath.Join(t.TempDir(), ".env")
	body := EnvLogLevel + "=debug\n" + EnvDebounceMs + "=75\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("LoadDotEnv returned error: %v", err)
	}
	if got := os.Getenv(EnvLogLevel); got != "warn" {
		t.Fatalf("%s = %q, want warn", EnvLogLevel, got)
	}
	if got := os.Getenv(EnvDebounceMs); got != "75" {
		t.Fatalf("%s = %q, want 75", EnvDebounceMs, got)
	}
}

func TestLoadDotEnv_MissingFileIsFine(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), ".env")); err != nil {
		t.Fatalf("LoadDotEnv returned error: %v", err)
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
