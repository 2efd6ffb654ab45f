package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/five82/studentsearch/internal/config"
	"github.com/five82/studentsearch/internal/form"
	"github.com/five82/studentsearch/internal/logging"
	"github.com/five82/studentsearch/internal/prefs"
	"github.com/five82/studentsearch/internal/roster"
	"github.com/five82/studentsearch/internal/student"
	"github.com/five82/studentsearch/internal/ui"
)

// Options configure a studentsearch session. Non-zero fields override the
// matching config file values.
type Options struct {
	ConfigPath string
	EnvFile    string        // empty loads ./.env when present
	PrefsPath  string        // empty uses default ~/.config/studentsearch/prefs.toml
	SeedFile   string        // YAML seed replacing the built-in roster
	Debounce   time.Duration // zero uses debounce_ms from config
	LogFile    string
	Verbose    bool
}

// session holds what both the TUI and the list command need.
type session struct {
	cfg    config.Config
	logger *zap.Logger
	store  *roster.Store
}

func open(opts Options) (*session, error) {
	if err := config.LoadDotEnv(opts.EnvFile); err != nil {
		return nil, err
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if opts.SeedFile != "" {
		cfg.SeedFile = opts.SeedFile
	}
	if opts.Debounce > 0 {
		cfg.Debounce = opts.Debounce
	}
	if opts.LogFile != "" {
		cfg.LogFile = opts.LogFile
	}

	logger, err := logging.New(logging.Options{
		File:    cfg.LogFile,
		Level:   cfg.LogLevel,
		Verbose: opts.Verbose,
	})
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}

	records := student.Seed()
	if cfg.SeedFile != "" {
		records, err = roster.LoadSeed(cfg.SeedFile)
		if err != nil {
			_ = logger.Sync()
			return nil, err
		}
	}

	return &session{cfg: cfg, logger: logger, store: roster.New(records...)}, nil
}

func (s *session) close() {
	_ = s.logger.Sync()
}

// Run boots the studentsearch TUI until the user quits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	s, err := open(opts)
	if err != nil {
		return err
	}
	defer s.close()

	userPrefs := prefs.Load(opts.PrefsPath)

	s.logger.Info("studentsearch starting",
		zap.Int("records", s.store.Len()),
		zap.String("seed_file", s.cfg.SeedFile),
		zap.Duration("debounce", s.cfg.Debounce),
		zap.String("theme", userPrefs.Theme),
	)

	err = ui.Run(ui.Options{
		Context:   ctx,
		Store:     s.store,
		Form:      form.New(s.store, form.WithDefaultBranch(s.cfg.DefaultBranch)),
		Logger:    s.logger,
		Debounce:  s.cfg.Debounce,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	})

	s.logger.Info("studentsearch stopped", zap.Int("records", s.store.Len()), zap.Error(err))
	return err
}
