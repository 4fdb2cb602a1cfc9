// Package router groups command-line arguments by flag token, validates them
// against a registry of supported flags and dispatches each flag to its
// handler, one at a time, in the order the flags appeared.
//
// Typical use:
//
//	supported := router.NewRegistry().
//		Alias(router.Definition{
//			Name:        "exec",
//			Description: "Run a shell command",
//			Handler:     router.HandlerFunc(runExec),
//		}, "-e", "--exec")
//
//	err := router.Run(ctx, router.Config{
//		ToolName:           "mytool",
//		SupportedArguments: supported,
//		Version:            router.StaticVersion("1.4.0"),
//	})
//
// The built-in -h/--help and -v/--version flags are always available and may
// be overridden by SupportedArguments.
package router

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/law-makers/clikit/pkg/console"
)

// DefaultToolName is shown when Config.ToolName is empty.
const DefaultToolName = "cli-tool"

// Config holds everything a run needs. Only SupportedArguments is usually set;
// the rest default to the live process.
type Config struct {
	ToolName           string
	SupportedArguments *Registry
	// Args is the raw argument list including the program path. Defaults to os.Args.
	Args      []string
	Presenter *console.Presenter
	Logger    *zerolog.Logger
	Version   VersionSource
	// Exit terminates the process when no flags are given. Defaults to os.Exit.
	Exit func(code int)
}

// Router holds the merged registry and presentation settings for one run.
// It is not modified after New returns.
type Router struct {
	toolName  string
	registry  *Registry
	args      []string
	presenter *console.Presenter
	logger    *zerolog.Logger
	version   VersionSource
	exit      func(int)
}

// New builds a Router from cfg, merging cfg.SupportedArguments over the
// built-in flags.
func New(cfg Config) *Router {
	r := &Router{
		toolName:  cfg.ToolName,
		args:      cfg.Args,
		presenter: cfg.Presenter,
		logger:    cfg.Logger,
		version:   cfg.Version,
		exit:      cfg.Exit,
	}
	if r.toolName == "" {
		r.toolName = DefaultToolName
	}
	if r.args == nil {
		r.args = os.Args
	}
	if r.logger == nil {
		nop := zerolog.Nop()
		r.logger = &nop
	}
	if r.presenter == nil {
		r.presenter = console.New(console.WithLogger(r.logger))
	}
	if r.exit == nil {
		r.exit = os.Exit
	}

	r.registry = r.builtins().Merge(cfg.SupportedArguments)
	return r
}

// Run builds a Router from cfg and runs it.
func Run(ctx context.Context, cfg Config) error {
	return New(cfg).Run(ctx)
}

// ToolName returns the display name used in headings and error banners.
func (r *Router) ToolName() string {
	return r.toolName
}

// Registry returns the merged registry.
func (r *Router) Registry() *Registry {
	return r.registry
}

// Run parses and validates the configured arguments and dispatches every flag
// in order. Each handler returns before the next one starts; the first error
// stops dispatch and is returned. When no flags were given, a hint is printed
// and the exit function is called with status 1.
func (r *Router) Run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	parsed, err := r.ProcessParsedArguments(ParseInputArguments(r.args))
	if err != nil {
		return err
	}

	if parsed.Len() == 0 {
		r.logger.Debug().Msg("No flags supplied")
		r.presenter.Warning("No flags were supplied.")
		r.presenter.Info(r.helpHint())
		r.exit(1)
		return &Error{Code: CodeNoFlags, Message: "no flags supplied"}
	}

	for _, flag := range parsed.Flags() {
		if err := ctx.Err(); err != nil {
			return &Error{Code: CodeFailure, Message: "dispatch interrupted", Flag: flag, Underlying: err}
		}

		def, _ := r.registry.Lookup(flag)
		values, _ := parsed.Values(flag)
		if def.Handler == nil {
			return r.fail(&Error{Code: CodeHandler, Message: "no handler for flag " + flag, Flag: flag})
		}

		r.logger.Debug().
			Str("flag", flag).
			Str("name", def.Name).
			Strs("args", values).
			Msg("Dispatching flag")

		if err := def.Handler.Execute(ctx, values...); err != nil {
			r.logger.Debug().Err(err).Str("flag", flag).Msg("Handler failed")
			return &Error{Code: CodeHandler, Message: flag + " failed", Flag: flag, Underlying: err}
		}
	}

	return nil
}

// ProcessParsedArguments drops the reserved bucket and checks every remaining
// flag against the registry. parsed is not modified; on success a validated
// copy is returned.
func (r *Router) ProcessParsedArguments(parsed *Arguments) (*Arguments, error) {
	r.logger.Debug().
		Strs("leading", parsed.Leading()).
		Strs("flags", parsed.Flags()).
		Msg("Arguments parsed")

	validated, err := parsed.Validate(r.registry)
	if err != nil {
		return nil, r.fail(err)
	}
	return validated, nil
}

// HandleError prints the error banner pointing at the help flag and returns
// an error carrying message.
func (r *Router) HandleError(message string) error {
	return r.fail(&Error{Code: CodeFailure, Message: message})
}

func (r *Router) fail(err error) error {
	msg := err.Error()
	if re, ok := err.(*Error); ok && re.Message != "" {
		msg = re.Message
	}
	r.presenter.Error("Error: " + msg)
	r.presenter.Info(r.helpHint())
	return err
}

func (r *Router) helpHint() string {
	return fmt.Sprintf("Run %q to see the supported flags.", r.toolName+" --help")
}
