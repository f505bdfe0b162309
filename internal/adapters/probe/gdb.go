package probe

import (
	"context"
	"os"
	"strings"

	"github.com/delphix/savedump/internal/core/ports"
	"go.trai.ch/zerr"
)

// sharedLibraryHeader marks the header row of gdb's "info sharedlibrary"
// table; data rows follow it with the mapped path as the last token.
const sharedLibraryHeader = "Shared Object Library"

var _ ports.Debugger = (*GdbDebugger)(nil)

// GdbDebugger implements ports.Debugger by running gdb in batch mode
// against the core and its executable.
//
// gdb reports the core's actual memory mappings, so libraries loaded at
// runtime with dlopen(3) are included, which a static enumerator misses.
type GdbDebugger struct {
	runner ports.Runner
	logger ports.Logger
}

// NewGdbDebugger creates a new GdbDebugger.
func NewGdbDebugger(runner ports.Runner, logger ports.Logger) *GdbDebugger {
	return &GdbDebugger{runner: runner, logger: logger}
}

// ListLoadedLibraries returns the shared-object paths mapped into the
// core's address space. Rows whose path no longer exists on disk are
// logged and skipped, never fatal.
//
// Example output of the batch command:
//
//	Core was generated by `ztest'.
//	#0  0x00007f2947ddf204 in __waitpid (...) at ../sysdeps/unix/sysv/linux/waitpid.c:30
//	From                To                  Syms Read   Shared Object Library
//	0x00007f29489ba180  0x00007f29489c4cea  Yes         /lib/libnvpair.so.1
//	0x00007f29471688c0  0x00007f294717aa83  Yes (*)     /lib/x86_64-linux-gnu/libudev.so.1
//	(*): Shared library is missing debugging information.
func (d *GdbDebugger) ListLoadedLibraries(ctx context.Context, corePath, binaryPath string) ([]string, error) {
	out, err := d.runner.Run(ctx, "gdb",
		"--batch", "--nx", "--eval-command=info sharedlibrary",
		"-c", corePath, binaryPath)
	if err != nil {
		return nil, zerr.Wrap(err, "gdb shared-library report failed")
	}
	return d.parseSharedLibraryTable(out), nil
}

func (d *GdbDebugger) parseSharedLibraryTable(out string) []string {
	var libraries []string
	recording := false
	for _, line := range strings.Split(out, "\n") {
		if !recording {
			if strings.Contains(line, sharedLibraryHeader) {
				recording = true
			}
			continue
		}
		idx := strings.IndexByte(line, '/')
		if idx < 0 {
			continue
		}
		path := line[idx:]
		if _, err := os.Stat(path); err != nil {
			d.logger.Warn("could not find shared object: " + path)
			continue
		}
		libraries = append(libraries, path)
	}
	return libraries
}
