package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/law-makers/clikit/pkg/router"
)

func TestRootCommandLeavesFlagsToRouter(t *testing.T) {
	cmd := newRootCmd()

	if !cmd.DisableFlagParsing {
		t.Fatal("Expected flag parsing to be disabled")
	}
	if cmd.Version != version {
		t.Errorf("Expected version %s, got %s", version, cmd.Version)
	}
	if cmd.HasSubCommands() {
		t.Error("Expected no subcommands")
	}
}

func TestRootCommandRejectsUnknownFlag(t *testing.T) {
	t.Setenv("CLIKIT_LOG_LEVEL", "error")
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--definitely-unknown"})

	if err := cmd.Execute(); err == nil {
		t.Fatal("Expected an error for an unknown flag")
	}
}

func TestRootCommandInvalidConfig(t *testing.T) {
	t.Setenv("CLIKIT_LOG_LEVEL", "loud")
	cmd := newRootCmd()
	cmd.SetArgs([]string{"-h"})

	if err := cmd.Execute(); err == nil {
		t.Fatal("Expected an error for an invalid log level")
	}
}

func TestShouldReport(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"invalid argument", &router.Error{Code: router.CodeInvalidArgument, Message: "unrecognised flag -x"}, false},
		{"no flags", &router.Error{Code: router.CodeNoFlags}, false},
		{"handler failure", &router.Error{Code: router.CodeHandler, Underlying: errors.New("boom")}, true},
		{"interrupted dispatch", &router.Error{Code: router.CodeFailure, Underlying: context.Canceled}, true},
		{"plain error", errors.New("config broke"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shouldReport(tt.err); got != tt.want {
				t.Errorf("shouldReport(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestRootCommandCancelledContext(t *testing.T) {
	t.Setenv("CLIKIT_LOG_LEVEL", "error")
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--styles"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := cmd.ExecuteContext(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected context.Canceled, got %v", err)
	}
}

func TestRootCommandAcceptsLoggingFlags(t *testing.T) {
	t.Setenv("CLIKIT_LOG_LEVEL", "")
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--log-level", "error", "--json-log", "--styles", "info"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Expected logging flags to be accepted, got %v", err)
	}
}
