// Package runtime provides application runtime context for Countdown.
package runtime

import (
	"io"
	"log/slog"

	"github.com/manav03panchal/countdown/internal/board"
	"github.com/manav03panchal/countdown/internal/config"
	"github.com/manav03panchal/countdown/internal/logging"
	"github.com/manav03panchal/countdown/internal/output"
	"github.com/manav03panchal/countdown/internal/storage"
)

// Context holds the application runtime context.
type Context struct {
	Config    *config.RuntimeConfig
	DB        *storage.DB
	Formatter *output.Formatter

	// Timers is the repository behind Board.
	Timers *storage.TimerRepo
	Board  *board.Board

	// SessionID tags every log record of this run.
	SessionID string
	Logger    *slog.Logger

	// Debug mode
	Debug bool

	logCloser io.Closer
}

// Options configures the runtime context.
type Options struct {
	ConfigPath string
	Format     output.Format
	ColorMode  output.ColorMode
	Debug      bool

	// Interactive routes logs away from the terminal: to LogPath when Debug
	// is set, otherwise nowhere.
	Interactive bool
	LogPath     string
}

// DefaultOptions returns default runtime options.
func DefaultOptions() Options {
	return Options{
		Format:    output.FormatCLI,
		ColorMode: output.ColorAuto,
		LogPath:   config.DefaultLogPath(),
	}
}

// New creates a new runtime context.
func New(opts Options) (*Context, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	logCloser, err := initLogging(opts)
	if err != nil {
		return nil, err
	}

	db, err := storage.Open(storage.Options{})
	if err != nil {
		if logCloser != nil {
			logCloser.Close()
		}
		return nil, err
	}

	sessionID := logging.NewSessionID()
	logger := logging.With(logging.KeySessionID, sessionID)

	timers := storage.NewTimerRepo(db)

	formatter := output.NewFormatter()
	formatter.Format = opts.Format
	formatter.ColorMode = opts.ColorMode

	logger.Debug("runtime started",
		"tick_interval", cfg.Tick.Interval.String(),
		logging.KeyCount, len(cfg.Categories))

	return &Context{
		Config:    cfg,
		DB:        db,
		Formatter: formatter,
		Timers:    timers,
		Board:     board.New(timers, board.WithLogger(logger)),
		SessionID: sessionID,
		Logger:    logger,
		Debug:     opts.Debug,
		logCloser: logCloser,
	}, nil
}

func initLogging(opts Options) (io.Closer, error) {
	switch {
	case opts.Interactive && opts.Debug:
		path := opts.LogPath
		if path == "" {
			path = config.DefaultLogPath()
		}
		return logging.InitFile(path, true)
	case opts.Interactive:
		logging.Init(logging.DiscardConfig())
	case opts.Debug:
		logging.InitDebug()
	default:
		cfg := logging.DefaultConfig()
		cfg.Level = slog.LevelWarn
		logging.Init(cfg)
	}
	return nil, nil
}

// Close closes the runtime context.
func (c *Context) Close() error {
	var err error
	if c.DB != nil {
		err = c.DB.Close()
		c.DB = nil
	}
	if c.logCloser != nil {
		if cerr := c.logCloser.Close(); err == nil {
			err = cerr
		}
		c.logCloser = nil
	}
	return err
}

// RemovalPolicy returns the view's removal gate from config.
func (c *Context) RemovalPolicy() board.RemovalPolicy {
	return board.RemovalPolicy{AllowWhileRunning: c.Config.View.RemoveWhileRunning}
}

// CLIFormatter returns a CLI formatter.
func (c *Context) CLIFormatter() *output.CLIFormatter {
	return output.NewCLIFormatter(c.Formatter)
}

// JSONFormatter returns a JSON formatter.
func (c *Context) JSONFormatter() *output.JSONFormatter {
	return output.NewJSONFormatter(c.Formatter)
}

// IsJSON returns true if output format is JSON.
func (c *Context) IsJSON() bool {
	return c.Formatter.Format == output.FormatJSON
}

// IsCLI returns true if output format is CLI.
func (c *Context) IsCLI() bool {
	return c.Formatter.Format == output.FormatCLI
}
