package probe

import (
	"context"
	"strings"

	"github.com/delphix/savedump/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ModuleInspector = (*ModinfoInspector)(nil)

// ModinfoInspector implements ports.ModuleInspector using modinfo(8).
type ModinfoInspector struct {
	runner ports.Runner
}

// NewModinfoInspector creates a new ModinfoInspector.
func NewModinfoInspector(runner ports.Runner) *ModinfoInspector {
	return &ModinfoInspector{runner: runner}
}

// SourceVersion returns the srcversion fingerprint embedded in the
// module file.
func (i *ModinfoInspector) SourceVersion(ctx context.Context, modulePath string) (string, error) {
	out, err := i.runner.Run(ctx, "modinfo", "--field=srcversion", modulePath)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "srcversion probe failed"), "module", modulePath)
	}
	return strings.TrimSpace(out), nil
}
