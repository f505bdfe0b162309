package domain

// DependencyClosure is the originating executable of a process dump plus
// the complete set of shared libraries mapped into its address space.
// The library list is deduplicated and keeps first-discovery order.
type DependencyClosure struct {
	Binary    string
	Libraries []string
}

// NewDependencyClosure builds a closure from the raw library list,
// dropping duplicates while preserving the order in which each path was
// first seen.
func NewDependencyClosure(binary string, libraries []string) DependencyClosure {
	seen := make(map[string]bool, len(libraries))
	unique := make([]string, 0, len(libraries))
	for _, lib := range libraries {
		if seen[lib] {
			continue
		}
		seen[lib] = true
		unique = append(unique, lib)
	}
	return DependencyClosure{Binary: binary, Libraries: unique}
}

// Binaries returns the executable followed by its libraries, the order
// in which debug info is resolved and artifacts are staged.
func (c DependencyClosure) Binaries() []string {
	return append([]string{c.Binary}, c.Libraries...)
}

// DebugStatus describes the outcome of a debug-info lookup for one binary.
type DebugStatus int

const (
	// DebugEmbedded means the binary carries its own DWARF sections and
	// needs no separate debug file.
	DebugEmbedded DebugStatus = iota
	// DebugFound means a separate debug file was located via build-id.
	DebugFound
	// DebugMissing means no embedded debug data and no separate file was
	// found. This is a valid, non-fatal outcome.
	DebugMissing
)

// DebugArtifact is the result of a debug-info lookup for one binary image.
type DebugArtifact struct {
	// Binary is the image that was probed.
	Binary string
	// Status records how the lookup concluded.
	Status DebugStatus
	// Path is the separate debug file, set only when Status is DebugFound.
	Path string
}
