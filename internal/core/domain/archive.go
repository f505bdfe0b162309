package domain

// LauncherScript is a self-locating shell entry point generated at the
// root of the staging directory.
type LauncherScript struct {
	// Name is the script file name, e.g. "run-gdb.sh".
	Name string
	// Contents is the full script body.
	Contents string
}

// ArchiveRequest describes one archive assembly operation.
type ArchiveRequest struct {
	// StagingName is the staging directory name, also the basename of the
	// resulting <StagingName>.tar.gz.
	StagingName string
	// RootFiles are copied flat into the staging root (the dump itself,
	// and vmlinux for kernel dumps).
	RootFiles []string
	// MirrorFiles are copied beneath the staging root mirroring their
	// absolute directory structure, so relative lookups from a launcher
	// script resolve without rewriting paths inside the copied binaries.
	MirrorFiles []string
	// Scripts are materialized executable at the staging root.
	Scripts []LauncherScript
}

// ManifestEntry records one staged file and its content digest.
type ManifestEntry struct {
	Source      string `json:"source"`
	ArchivePath string `json:"archivePath"`
	Digest      string `json:"digest"`
}

// ArchiveManifest lists every file staged into an archive. It is written
// as manifest.json at the staging root so a later analysis session can
// verify artifact integrity.
type ArchiveManifest struct {
	Entries []ManifestEntry `json:"entries"`
}
