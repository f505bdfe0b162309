package domain

import "go.trai.ch/zerr"

var (
	// ErrToolMissing is returned when a required external tool is absent
	// from the execution environment.
	ErrToolMissing = zerr.New("could not find program")

	// ErrToolExecutionFailed is returned when an external tool ran but
	// exited with a non-zero status.
	ErrToolExecutionFailed = zerr.New("tool exited with non-zero status")

	// ErrUnknownDumpKind is returned when the file-type probe output
	// matches neither the kernel-dump nor the core-file marker.
	ErrUnknownDumpKind = zerr.New("unknown dump kind")

	// ErrBinaryNotFound is returned when the originating executable of a
	// core dump cannot be determined or does not exist on disk.
	ErrBinaryNotFound = zerr.New("could not find binary program from core")

	// ErrDependencyToolsUnavailable is returned when every library
	// resolution strategy fails to execute.
	ErrDependencyToolsUnavailable = zerr.New("all library resolution strategies failed")

	// ErrVmlinuxNotFound is returned when no debug kernel image exists
	// for the crashed kernel's release.
	ErrVmlinuxNotFound = zerr.New("cannot find vmlinux")

	// ErrBadDumpHeader is returned when a kernel dump header cannot be
	// parsed.
	ErrBadDumpHeader = zerr.New("malformed kernel dump header")

	// ErrArchive is returned when staging or compressing the archive
	// fails. No partial archive is left behind.
	ErrArchive = zerr.New("archive assembly failed")

	// ErrConfigParseFailed is returned when savedump.yaml cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")
)
