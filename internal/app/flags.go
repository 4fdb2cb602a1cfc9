package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/law-makers/clikit/internal/config"
	"github.com/law-makers/clikit/pkg/console"
	"github.com/law-makers/clikit/pkg/router"
)

const defaultQuestion = "What is your name? "

// Flags returns the flags the clikit binary supports on top of the built-ins.
func (a *Application) Flags() *router.Registry {
	return router.NewRegistry().
		Alias(router.Definition{
			Name:        "exec",
			Description: "Run a shell command and print its output",
			Handler:     router.HandlerFunc(a.runExec),
		}, "-e", "--exec").
		Alias(router.Definition{
			Name:           "styles",
			Description:    "Print every style sample, or only the named ones",
			AllowedOptions: formatNames(),
			Handler:        router.HandlerFunc(a.runStyles),
		}, "-s", "--styles").
		Alias(router.Definition{
			Name:        "ask",
			Description: "Prompt for a line of input and echo it back",
			Handler:     router.HandlerFunc(a.runAsk),
		}, "-a", "--ask").
		Set(config.FlagLogLevel, router.Definition{
			Name:           "log-level",
			Description:    "Set the log level for this run",
			AllowedOptions: config.LogLevels(),
			Handler:        router.HandlerFunc(a.logSettings),
		}).
		Set(config.FlagJSONLog, router.Definition{
			Name:        "json-log",
			Description: "Write logs to stderr as JSON",
			Handler:     router.HandlerFunc(a.logSettings),
		})
}

// logSettings handles the logging flags. Their values are applied by
// config.Load before the application starts, so dispatch only records them.
func (a *Application) logSettings(_ context.Context, _ ...string) error {
	a.Logger.Debug().
		Str("level", a.Config.LogLevel).
		Bool("json", a.Config.JSONLog).
		Msg("Logging configured from flags")
	return nil
}

func formatNames() []string {
	formats := console.Formats()
	names := make([]string, 0, len(formats))
	for _, f := range formats {
		names = append(names, string(f))
	}
	return names
}

func (a *Application) runExec(ctx context.Context, args ...string) error {
	if len(args) == 0 {
		return errors.New("a command is required, e.g. --exec ls -la")
	}
	command := strings.Join(args, " ")

	a.Presenter.Terminal(command)
	res := a.Presenter.ExecuteWithSpinner(ctx, command, "running")

	if out := strings.TrimRight(res.Output, "\n"); out != "" {
		fmt.Fprintln(a.Presenter.Writer(), out)
	}
	if res.Failed() {
		a.Presenter.Error(strings.TrimRight(res.Error, "\n"))
		a.Presenter.Warning(fmt.Sprintf("exit status %d", res.ExitCode))
		return nil
	}
	a.Presenter.Success("done")
	return nil
}

func (a *Application) runStyles(_ context.Context, args ...string) error {
	formats := console.Formats()
	if len(args) > 0 {
		formats = formats[:0:0]
		for _, name := range args {
			f := console.Format(name)
			if !console.Known(f) {
				a.Presenter.Warning(fmt.Sprintf("unknown style %q", name))
				continue
			}
			formats = append(formats, f)
		}
	}

	a.Presenter.SubHeading("Styles")
	for _, f := range formats {
		a.Presenter.Log(string(f), console.CommandLineFormat(f))
	}
	return nil
}

func (a *Application) runAsk(_ context.Context, args ...string) error {
	question := defaultQuestion
	if len(args) > 0 {
		question = strings.Join(args, " ") + " "
	}

	answer, err := a.Presenter.Input(question)
	if err != nil {
		return fmt.Errorf("failed to read answer: %w", err)
	}
	a.Presenter.Success("You entered: " + answer)
	return nil
}
