// Package domain contains the core types for savedump.
package domain

import "sort"

// DumpKind identifies the kind of crash artifact being archived.
//
// The kind is decided exactly once per run, before any resolution step,
// and is never re-evaluated.
type DumpKind int

const (
	// KindUnknown is the zero value; classification failed or has not run.
	KindUnknown DumpKind = iota
	// KindSystem is a whole-system kernel crash dump.
	KindSystem
	// KindProcess is a single-process userland core dump.
	KindProcess
)

// String returns a human-readable name for the dump kind.
func (k DumpKind) String() string {
	switch k {
	case KindSystem:
		return "kernel crash dump"
	case KindProcess:
		return "userland core dump"
	default:
		return "unknown"
	}
}

// KernelDumpInfo holds the identifying attributes read from a kernel
// crash dump header.
type KernelDumpInfo struct {
	// Nodename is the hostname of the crashed machine.
	Nodename string
	// OSRelease is the kernel release string (uname -r) of the crashed kernel.
	OSRelease string
}

// ModuleRecord describes one kernel module reported as loaded inside a
// system dump.
type ModuleRecord struct {
	// Name is the module name as recorded in the kernel's module list.
	Name string
	// SrcVersion is the embedded version fingerprint of the exact build.
	SrcVersion string
}

// ModuleMatch maps a loaded module name to the on-disk file whose
// fingerprint matched. A name is resolved at most once.
type ModuleMatch map[string]string

// Paths returns the matched on-disk module paths in sorted order.
func (m ModuleMatch) Paths() []string {
	paths := make([]string, 0, len(m))
	for _, p := range m {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
