// Package shell provides the external-tool runner adapter.
package shell

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/delphix/savedump/internal/core/domain"
	"github.com/delphix/savedump/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Runner = (*Runner)(nil)

// Runner implements ports.Runner using os/exec.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

// Run executes the named tool and returns its standard output.
//
// The call blocks until the subprocess exits. A tool that is not on PATH
// yields domain.ErrToolMissing before anything is spawned; a non-zero
// exit yields domain.ErrToolExecutionFailed carrying the exit code and
// the captured stderr. Stderr emitted by a succeeding tool is surfaced
// through the logger so diagnostics are never silently dropped.
func (r *Runner) Run(ctx context.Context, name string, args ...string) (string, error) {
	if _, err := exec.LookPath(name); err != nil {
		return "", zerr.With(domain.ErrToolMissing, "tool", name)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // tool names are fixed by the probe adapters
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		exitCode := -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
		wrapped := zerr.Wrap(domain.ErrToolExecutionFailed, name+" failed")
		wrapped = zerr.With(wrapped, "exit_code", exitCode)
		return "", zerr.With(wrapped, "stderr", stderr.String())
	}

	if stderr.Len() > 0 {
		for _, line := range strings.Split(strings.TrimSuffix(stderr.String(), "\n"), "\n") {
			r.logger.Warn(name + ": " + line)
		}
	}

	return stdout.String(), nil
}
