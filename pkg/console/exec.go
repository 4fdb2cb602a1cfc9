package console

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
)

// spinnerInterval is how often ExecuteWithSpinner advances the spinner.
const spinnerInterval = 100 * time.Millisecond

// CommandResult holds what a shell command wrote and how it ended.
type CommandResult struct {
	// Output is the captured standard output.
	Output string
	// Error is the captured standard error, or the failure message when the
	// command could not be started or exited without writing to stderr.
	Error string
	// Err is the underlying failure, nil on a zero exit status.
	Err error
	// ExitCode is the process exit status; -1 if it never ran to completion.
	ExitCode int
}

// Failed reports whether the command did not exit cleanly.
func (r CommandResult) Failed() bool {
	return r.Err != nil
}

// ExecuteCommand runs command through the presenter's shell and waits for it
// to finish. Failures are reported in the result, never returned or raised.
func (p *Presenter) ExecuteCommand(ctx context.Context, command string) CommandResult {
	if ctx == nil {
		ctx = context.Background()
	}

	args := make([]string, 0, len(p.shell))
	args = append(args, p.shell[1:]...)
	args = append(args, command)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, p.shell[0], args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()

	result := CommandResult{
		Output:   stdout.String(),
		Error:    stderr.String(),
		Err:      err,
		ExitCode: 0,
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
		} else {
			result.ExitCode = -1
		}
		if strings.TrimSpace(result.Error) == "" {
			result.Error = err.Error()
		}
	}

	p.logger.Debug().
		Str("command", command).
		Int("exit_code", result.ExitCode).
		Dur("elapsed", time.Since(start)).
		Msg("Command finished")

	return result
}

// ExecuteWithSpinner behaves like ExecuteCommand and draws a spinner with
// description on the error stream until the command finishes.
func (p *Presenter) ExecuteWithSpinner(ctx context.Context, command, description string) CommandResult {
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(p.errOut),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)

	done := make(chan struct{})
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		ticker := time.NewTicker(spinnerInterval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				_ = bar.Add(1)
			}
		}
	}()

	result := p.ExecuteCommand(ctx, command)

	close(done)
	<-stopped
	_ = bar.Finish()

	return result
}
