package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/studentsearch/internal/student"
)

// Config holds the runtime settings for studentsearch.
type Config struct {
	Debounce      time.Duration
	DefaultBranch student.Branch
	SeedFile      string
	LogFile       string
	LogLevel      string
}

const (
	defaultConfigPath = "~/.config/studentsearch/config.toml"
	defaultLogFile    = "~/.local/state/studentsearch/studentsearch.log"
	defaultLogLevel   = "info"
	defaultDebounceMs = 120
)

// Environment variables that override file values.
const (
	EnvDebounceMs = "STUDENTSEARCH_DEBOUNCE_MS"
	EnvSeedFile   = "STUDENTSEARCH_SEED_FILE"
	EnvLogFile    = "STUDENTSEARCH_LOG_FILE"
	EnvLogLevel   = "STUDENTSEARCH_LOG_LEVEL"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Debounce:      defaultDebounceMs * time.Millisecond,
		DefaultBranch: student.DefaultBranch,
		LogFile:       mustExpand(defaultLogFile),
		LogLevel:      defaultLogLevel,
	}
}

// LoadDotEnv loads KEY=VALUE pairs from path into the process environment
// without overriding variables that are already set. A missing file is not
// an error.
func LoadDotEnv(path string) error {
	if strings.TrimSpace(path) == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env file: %w", err)
	}
	return nil
}

// Load locates and parses the config file, falling back to defaults when it
// is missing, then applies environment overrides.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	switch {
	case err == nil:
		defer file.Close()
		if err := parseInto(&cfg, file); err != nil {
			return Config{}, err
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return Config{}, fmt.Errorf("open config: %w", err)
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func parseInto(cfg *Config, r io.Reader) error {
	bytes, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		DebounceMs    *int   `toml:"debounce_ms"`
		DefaultBranch string `toml:"default_branch"`
		SeedFile      string `toml:"seed_file"`
		LogFile       string `toml:"log_file"`
		LogLevel      string `toml:"log_level"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	if raw.DebounceMs != nil {
		if *raw.DebounceMs < 0 {
			return fmt.Errorf("parse config: debounce_ms must not be negative")
		}
		cfg.Debounce = time.Duration(*raw.DebounceMs) * time.Millisecond
	}

	if branch := strings.TrimSpace(raw.DefaultBranch); branch != "" {
		parsed, ok := student.ParseBranch(branch)
		if !ok {
			return fmt.Errorf("parse config: unknown default_branch %q", branch)
		}
		cfg.DefaultBranch = parsed
	}

	if seed := strings.TrimSpace(raw.SeedFile); seed != "" {
		cfg.SeedFile = mustExpand(seed)
	}
	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}
	if level := strings.TrimSpace(raw.LogLevel); level != "" {
		cfg.LogLevel = strings.ToLower(level)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if v := strings.TrimSpace(os.Getenv(EnvDebounceMs)); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil || ms < 0 {
			return fmt.Errorf("%s: invalid value %q", EnvDebounceMs, v)
		}
		cfg.Debounce = time.Duration(ms) * time.Millisecond
	}
	if v := strings.TrimSpace(os.Getenv(EnvSeedFile)); v != "" {
		cfg.SeedFile = mustExpand(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		cfg.LogFile = mustExpand(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	return nil
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
