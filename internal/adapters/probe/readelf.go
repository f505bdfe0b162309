package probe

import (
	"context"
	"strings"

	"github.com/delphix/savedump/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.BinaryInspector = (*ElfInspector)(nil)

// ElfInspector implements ports.BinaryInspector using readelf(1).
type ElfInspector struct {
	runner ports.Runner
}

// NewElfInspector creates a new ElfInspector.
func NewElfInspector(runner ports.Runner) *ElfInspector {
	return &ElfInspector{runner: runner}
}

// HasEmbeddedDebugInfo reports whether the binary's section headers
// carry both .debug_info and .debug_str, i.e. the binary has not been
// stripped of its DWARF data.
func (i *ElfInspector) HasEmbeddedDebugInfo(ctx context.Context, path string) (bool, error) {
	out, err := i.runner.Run(ctx, "readelf", "-S", path)
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, "section-header probe failed"), "path", path)
	}
	return parseDebugSections(out), nil
}

// BuildID returns the hex build identifier from the binary's ELF notes,
// or "" when the notes carry none.
func (i *ElfInspector) BuildID(ctx context.Context, path string) (string, error) {
	out, err := i.runner.Run(ctx, "readelf", "-n", path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "notes probe failed"), "path", path)
	}
	return parseBuildID(out), nil
}

func parseDebugSections(out string) bool {
	debugInfo, debugStr := false, false
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, ".debug_info") {
			debugInfo = true
		}
		if strings.Contains(line, ".debug_str") {
			debugStr = true
		}
		if debugInfo && debugStr {
			return true
		}
	}
	return false
}

func parseBuildID(out string) string {
	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(line, "Build ID:") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return ""
		}
		return fields[2]
	}
	return ""
}
