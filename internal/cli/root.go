// Package cli provides the command-line interface for the clikit binary.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/law-makers/clikit/internal/app"
	"github.com/law-makers/clikit/internal/config"
	"github.com/law-makers/clikit/pkg/router"
)

// version is overridden at build time with -ldflags "-X .../internal/cli.version=..."
var version = "0.1.0"

// rootCmd represents the base command. Flag parsing is left to the router, so
// every token after the program name reaches it untouched.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                "clikit [flags]",
		Short:              "Demonstrates the clikit argument router and console presenter",
		Version:            version,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE:               run,
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	return cmd
}

// Execute runs the root command with ctx and returns its error.
// This is called by main.main(). It only needs to happen once to the rootCmd.
// Cancelling ctx stops dispatch before the next flag handler.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func run(cmd *cobra.Command, args []string) error {
	argv := append([]string{cmd.CommandPath()}, args...)

	cfg, err := config.Load(cmd.Version, nil, argv)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}

	a, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	err = a.Run(cmd.Context(), argv)
	if shouldReport(err) {
		a.Presenter.Error(err.Error())
	}
	if err != nil {
		log.Debug().Err(err).Msg("Run failed")
	}
	return err
}

// shouldReport reports whether err still needs printing. Argument errors and
// the no-flags hint have already been shown by the router.
func shouldReport(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, router.ErrInvalidArgument) && !errors.Is(err, router.ErrNoFlags)
}
