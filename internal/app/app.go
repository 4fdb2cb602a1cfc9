// Package app provides the core application initialization and lifecycle management.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/law-makers/clikit/internal/config"
	"github.com/law-makers/clikit/pkg/console"
	"github.com/law-makers/clikit/pkg/router"
)

// Application holds all application dependencies and manages their lifecycle.
//
// It is created once at startup. Presenter and Exit may be replaced before
// Run is called, which is how tests capture output.
type Application struct {
	Config    *config.Config
	Logger    *zerolog.Logger
	Presenter *console.Presenter
	Exit      func(code int)
	startTime time.Time
}

// New creates and initializes a new Application.
//
// It performs the following initialization steps:
//   - Configures logging based on the provided config
//   - Creates the console presenter on stdout
//
// If any step fails, an error is returned.
func New(cfg *config.Config) (*Application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	logLevel := zerolog.ErrorLevel // default: suppress non-verbose info logs
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		logLevel = zerolog.DebugLevel
	case "warn":
		logLevel = zerolog.WarnLevel
	case "error":
		logLevel = zerolog.ErrorLevel
	// Treat "info" as non-verbose
	default:
		logLevel = zerolog.ErrorLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	var logWriter io.Writer
	if cfg.JSONLog {
		logWriter = os.Stderr
	} else {
		logWriter = zerolog.ConsoleWriter{Out: os.Stderr}
	}

	logger := log.Output(logWriter).With().Timestamp().Logger()

	logger.Debug().
		Str("level", cfg.LogLevel).
		Bool("json", cfg.JSONLog).
		Msg("Logger initialized")

	a := &Application{
		Config:    cfg,
		Logger:    &logger,
		Presenter: console.New(console.WithLogger(&logger)),
		Exit:      os.Exit,
		startTime: time.Now(),
	}

	logger.Debug().Str("tool", cfg.ToolName).Msg("Application initialized")
	return a, nil
}

// Run dispatches args, the full argument list including the program path,
// through the router with the application's flags.
func (a *Application) Run(ctx context.Context, args []string) error {
	return router.Run(ctx, router.Config{
		ToolName:           a.Config.ToolName,
		SupportedArguments: a.Flags(),
		Args:               args,
		Presenter:          a.Presenter,
		Logger:             a.Logger,
		Version:            a.VersionSource(),
		Exit:               a.Exit,
	})
}

// VersionSource picks the version strategy from the configuration:
// a local descriptor (with the global listing when configured), the global
// listing alone, or the version compiled into the binary.
func (a *Application) VersionSource() router.VersionSource {
	var global router.VersionSource
	if a.Config.ListCommand != "" {
		global = router.GlobalListing{
			Command: a.Config.ListCommand,
			Package: a.Config.Package,
			Runner:  a.Presenter,
		}
	}

	switch {
	case a.Config.DescriptorPath != "":
		return router.LocalDescriptor{Path: a.Config.DescriptorPath, Global: global}
	case global != nil:
		return global
	case a.Config.Version != "":
		return router.StaticVersion(a.Config.Version)
	default:
		return nil
	}
}

// Close releases application resources.
func (a *Application) Close() error {
	a.Logger.Debug().Dur("uptime", a.Uptime()).Msg("Application shutdown complete")
	return nil
}

// Uptime returns how long the application has been running.
func (a *Application) Uptime() time.Duration {
	return time.Since(a.startTime)
}
