// Package archive implements staging, launcher generation and
// compression of the final artifact bundle.
package archive

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/delphix/savedump/internal/core/domain"
	"github.com/delphix/savedump/internal/core/ports"
	"go.trai.ch/zerr"
)

// manifestName is written at the staging root so a later analysis
// session can verify artifact integrity.
const manifestName = "manifest.json"

var _ ports.Assembler = (*Assembler)(nil)

// Assembler implements ports.Assembler.
//
// The staging directory lives in the working directory for the duration
// of one Assemble call and is removed on every exit path. Concurrent
// assembly of the same dump is not supported: the staging name is
// derived from the dump, not collision-proof.
type Assembler struct {
	logger ports.Logger
}

// NewAssembler creates a new Assembler.
func NewAssembler(logger ports.Logger) *Assembler {
	return &Assembler{logger: logger}
}

// Assemble stages the requested artifacts, materializes the launcher
// scripts, writes the manifest and compresses everything into
// <StagingName>.tar.gz in the working directory.
func (a *Assembler) Assemble(ctx context.Context, req domain.ArchiveRequest) (string, error) {
	stagingDir := req.StagingName
	if err := os.MkdirAll(stagingDir, 0o755); err != nil {
		return "", zerr.With(zerr.Wrap(domain.ErrArchive, err.Error()), "staging_dir", stagingDir)
	}
	defer func() {
		if err := os.RemoveAll(stagingDir); err != nil {
			a.logger.Warn("failed to remove staging directory: " + stagingDir)
		}
	}()

	manifest, err := a.stage(ctx, stagingDir, req)
	if err != nil {
		return "", err
	}

	for _, script := range req.Scripts {
		scriptPath := filepath.Join(stagingDir, script.Name)
		if err := os.WriteFile(scriptPath, []byte(script.Contents), 0o755); err != nil { //nolint:gosec // launcher must be executable
			return "", zerr.With(zerr.Wrap(domain.ErrArchive, err.Error()), "script", script.Name)
		}
	}

	if err := writeManifest(filepath.Join(stagingDir, manifestName), manifest); err != nil {
		return "", err
	}

	archivePath := stagingDir + ".tar.gz"
	a.logger.Info("compressing archive...")
	if err := compress(ctx, stagingDir, archivePath); err != nil {
		// No partial archive is ever left in place.
		_ = os.Remove(archivePath)
		return "", zerr.With(zerr.Wrap(domain.ErrArchive, err.Error()), "archive", archivePath)
	}

	return archivePath, nil
}

// stage copies the request's files into the staging directory and
// returns the manifest describing them. Root files land flat at the
// staging root; mirrored files keep their absolute directory structure
// beneath it so relative lookups from a launcher script resolve without
// rewriting paths inside the copied binaries.
func (a *Assembler) stage(ctx context.Context, stagingDir string, req domain.ArchiveRequest) (domain.ArchiveManifest, error) {
	var manifest domain.ArchiveManifest

	appendEntry := func(src, destRel string) error {
		if err := ctx.Err(); err != nil {
			return zerr.Wrap(domain.ErrArchive, err.Error())
		}
		dest := filepath.Join(stagingDir, destRel)
		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return zerr.With(zerr.Wrap(domain.ErrArchive, err.Error()), "path", dest)
		}
		digest, err := copyFile(src, dest)
		if err != nil {
			return zerr.With(zerr.Wrap(domain.ErrArchive, err.Error()), "source", src)
		}
		manifest.Entries = append(manifest.Entries, domain.ManifestEntry{
			Source:      src,
			ArchivePath: destRel,
			Digest:      digest,
		})
		return nil
	}

	for _, src := range req.RootFiles {
		if err := appendEntry(src, filepath.Base(src)); err != nil {
			return domain.ArchiveManifest{}, err
		}
	}
	for _, src := range req.MirrorFiles {
		rel := src
		if filepath.IsAbs(rel) {
			rel = rel[1:]
		}
		if err := appendEntry(src, rel); err != nil {
			return domain.ArchiveManifest{}, err
		}
	}
	return manifest, nil
}

func writeManifest(path string, manifest domain.ArchiveManifest) error {
	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return zerr.Wrap(domain.ErrArchive, err.Error())
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // world-readable metadata
		return zerr.Wrap(domain.ErrArchive, err.Error())
	}
	return nil
}
