// Package probe implements the external-tool probe adapters. Each file
// wraps one tool behind a narrow port, keeping the textual parsing rules
// isolated and unit-testable against captured sample outputs.
package probe

import (
	"context"

	"github.com/delphix/savedump/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.TypeProber = (*FileProber)(nil)

// FileProber implements ports.TypeProber using file(1).
type FileProber struct {
	runner ports.Runner
}

// NewFileProber creates a new FileProber.
func NewFileProber(runner ports.Runner) *FileProber {
	return &FileProber{runner: runner}
}

// Describe returns the file-type description of the artifact.
func (p *FileProber) Describe(ctx context.Context, path string) (string, error) {
	out, err := p.runner.Run(ctx, "file", path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "file-type probe failed"), "path", path)
	}
	return out, nil
}
