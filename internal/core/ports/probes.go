package ports

import (
	"context"

	"github.com/delphix/savedump/internal/core/domain"
)

//go:generate mockgen -source=probes.go -destination=mocks/mock_probes.go -package=mocks

// TypeProber returns the human-readable file-type description of an
// artifact, as reported by file(1).
type TypeProber interface {
	Describe(ctx context.Context, path string) (string, error)
}

// ModuleLister walks the live kernel module list recorded inside a
// system dump and reports each module's name and version fingerprint.
type ModuleLister interface {
	ListLoadedModules(ctx context.Context, dumpPath string) ([]domain.ModuleRecord, error)
}

// ModuleInspector extracts the embedded version fingerprint of an
// on-disk kernel module file.
type ModuleInspector interface {
	SourceVersion(ctx context.Context, modulePath string) (string, error)
}

// BinaryInspector probes a binary image's ELF metadata.
type BinaryInspector interface {
	// HasEmbeddedDebugInfo reports whether the binary carries both the
	// debug-information and debug-string sections.
	HasEmbeddedDebugInfo(ctx context.Context, path string) (bool, error)
	// BuildID returns the hex build identifier from the binary's notes,
	// or "" if the notes carry none.
	BuildID(ctx context.Context, path string) (string, error)
}

// Debugger lists the shared-object libraries mapped into a core dump's
// address space, including libraries loaded at runtime with dlopen(3)
// that a static analysis would miss.
type Debugger interface {
	ListLoadedLibraries(ctx context.Context, corePath, binaryPath string) ([]string, error)
}

// LinkEnumerator statically enumerates an executable's link-time
// shared-object dependencies. Used only as a fallback when the debugger
// fails to execute.
type LinkEnumerator interface {
	ListLinkedLibraries(ctx context.Context, binaryPath string) ([]string, error)
}
