package probe

import (
	"context"
	"strings"

	"github.com/delphix/savedump/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.LinkEnumerator = (*LddEnumerator)(nil)

// LddEnumerator implements ports.LinkEnumerator using ldd(1). It only
// sees link-time dependencies, so it serves as the fallback when gdb
// fails to execute.
type LddEnumerator struct {
	runner ports.Runner
}

// NewLddEnumerator creates a new LddEnumerator.
func NewLddEnumerator(runner ports.Runner) *LddEnumerator {
	return &LddEnumerator{runner: runner}
}

// ListLinkedLibraries returns the resolved shared-object paths of the
// executable's dynamic dependencies.
//
// Example output:
//
//	linux-vdso.so.1 (0x00007ffeeb9ac000)
//	libnvpair.so.1 => /lib/libnvpair.so.1 (0x00007f607a568000)
//	/lib64/ld-linux-x86-64.so.2 (0x00007f607a9a2000)
//
// Virtual objects like the vdso never resolve to a path and are dropped.
// The dynamic linker line has no "=>" but is kept: it is the interpreter
// the analysis session needs in extreme situations.
func (e *LddEnumerator) ListLinkedLibraries(ctx context.Context, binaryPath string) ([]string, error) {
	out, err := e.runner.Run(ctx, "ldd", binaryPath)
	if err != nil {
		return nil, zerr.Wrap(err, "ldd enumeration failed")
	}
	return parseLddOutput(out), nil
}

func parseLddOutput(out string) []string {
	var libraries []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		fields := strings.Fields(line)
		switch {
		case strings.Contains(line, "=>"):
			if len(fields) >= 3 && strings.HasPrefix(fields[2], "/") {
				libraries = append(libraries, fields[2])
			}
		case strings.Contains(line, "ld-linux-"):
			if len(fields) >= 1 {
				libraries = append(libraries, fields[0])
			}
		}
	}
	return libraries
}
