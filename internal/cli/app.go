// Package cli wires the bridges to the headless engine for the webshim CLI.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/bnema/webshim/internal/application/port"
	"github.com/bnema/webshim/internal/application/usecase"
	"github.com/bnema/webshim/internal/cli/styles"
	"github.com/bnema/webshim/internal/domain/build"
	"github.com/bnema/webshim/internal/infrastructure/config"
	"github.com/bnema/webshim/internal/infrastructure/filesystem"
	"github.com/bnema/webshim/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/webshim/internal/infrastructure/webkit"
	"github.com/bnema/webshim/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info
	Out       io.Writer

	db  port.DatabaseProvider
	ctx context.Context
}

// Options configures NewApp.
type Options struct {
	// ConfigFile overrides the XDG config file location.
	ConfigFile string
	// LogLevel overrides logging.level when set.
	LogLevel string
}

// NewApp loads configuration and builds the logger. The history database is
// opened on first use.
func NewApp(opts Options) (*App, error) {
	var (
		mgr *config.Manager
		err error
	)
	if opts.ConfigFile != "" {
		mgr, err = config.NewManagerAt(opts.ConfigFile)
	} else {
		mgr, err = config.NewManager()
	}
	if err != nil {
		return nil, err
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	level := cfg.Logging.Level
	if opts.LogLevel != "" {
		level = opts.LogLevel
	}
	logger := logging.New(logging.Config{
		Level:      logging.ParseLevel(level),
		Format:     cfg.Logging.Format,
		TimeFormat: "15:04:05",
		Output:     os.Stderr,
	})

	return &App{
		Config:  cfg,
		Manager: mgr,
		Theme:   styles.NewTheme(),
		Out:     os.Stdout,
		db:      sqlite.NewLazyDB(cfg.Database.Path),
		ctx:     logging.WithContext(context.Background(), logger),
	}, nil
}

// Ctx returns the context carrying the CLI logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// History opens the history database and returns the recording use case.
func (a *App) History(ctx context.Context) (*usecase.RecordDownloadUseCase, error) {
	db, err := a.db.DB(ctx)
	if err != nil {
		return nil, err
	}
	return usecase.NewRecordDownloadUseCase(sqlite.NewDownloadRepository(db)), nil
}

// BridgeConfig returns the download bridge settings from config.
// events may be nil.
func (a *App) BridgeConfig(events port.DownloadEventHandler) webkit.DownloadBridgeConfig {
	var fs port.FileSystem
	if a.Config.Downloads.Deduplicate {
		fs = filesystem.New()
	}
	return webkit.DownloadBridgeConfig{
		DownloadDir:     a.Config.Downloads.Directory,
		ReportFinalPath: a.Config.Downloads.ReportFinalPath,
		Prepare:         usecase.NewPrepareDownloadUseCase(fs),
		Events:          events,
	}
}

// ScriptOptions returns the mouse script settings from config.
func (a *App) ScriptOptions() webkit.ScriptOptions {
	return webkit.ScriptOptions{GuardMissingElement: a.Config.Mouse.GuardMissingElement}
}

// Close releases the history database if it was opened.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
