package domain

import "path/filepath"

// Paths holds the host filesystem roots savedump resolves artifacts
// against. Tests substitute temporary directories here.
type Paths struct {
	// DebugRoot is the root of the host debug-info repository,
	// conventionally /usr/lib/debug.
	DebugRoot string
	// ModuleRoot is the root of the kernel debug-module tree, keyed by
	// os release underneath, conventionally /usr/lib/debug/lib/modules.
	ModuleRoot string
}

// DefaultPaths returns the conventional host roots.
func DefaultPaths() Paths {
	return Paths{
		DebugRoot:  "/usr/lib/debug",
		ModuleRoot: "/usr/lib/debug/lib/modules",
	}
}

// VmlinuxPath returns the expected location of the debug kernel image
// for the given release.
func (p Paths) VmlinuxPath(osRelease string) string {
	return filepath.Join(p.DebugRoot, "boot", "vmlinux-"+osRelease)
}

// ModuleTree returns the directory enumerated for candidate .ko files
// for the given release.
func (p Paths) ModuleTree(osRelease string) string {
	return filepath.Join(p.ModuleRoot, osRelease)
}

// BuildIDPath returns the conventional two-level debug-file path for a
// build identifier: <DebugRoot>/.build-id/<first-2-hex>/<remaining-hex>.debug.
func (p Paths) BuildIDPath(buildID string) string {
	return filepath.Join(p.DebugRoot, ".build-id", buildID[:2], buildID[2:]+".debug")
}
