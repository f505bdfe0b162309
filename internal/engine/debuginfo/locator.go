// Package debuginfo finds separate DWARF debug files for stripped
// binaries.
package debuginfo

import (
	"context"
	"os"
	"runtime"

	"github.com/delphix/savedump/internal/core/domain"
	"github.com/delphix/savedump/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Locator decides, per binary, whether a separate debug file is needed
// and where the host debug repository keeps it.
type Locator struct {
	inspector ports.BinaryInspector
	paths     domain.Paths
	logger    ports.Logger
}

// NewLocator creates a new Locator.
func NewLocator(inspector ports.BinaryInspector, paths domain.Paths, logger ports.Logger) *Locator {
	return &Locator{inspector: inspector, paths: paths, logger: logger}
}

// Locate classifies a single binary. A binary carrying its own
// .debug_info and .debug_str sections needs no separate file. Otherwise
// the build id from the ELF notes names a candidate under
// <debugRoot>/.build-id, which is included only if it exists. A missing
// debug file is a soft outcome reported through the artifact status,
// never an error.
func (l *Locator) Locate(ctx context.Context, binary string) (domain.DebugArtifact, error) {
	embedded, err := l.inspector.HasEmbeddedDebugInfo(ctx, binary)
	if err != nil {
		return domain.DebugArtifact{}, zerr.Wrap(err, "failed to inspect debug sections")
	}
	if embedded {
		return domain.DebugArtifact{Binary: binary, Status: domain.DebugEmbedded}, nil
	}

	buildID, err := l.inspector.BuildID(ctx, binary)
	if err != nil {
		return domain.DebugArtifact{}, zerr.Wrap(err, "failed to read build id")
	}
	if len(buildID) < 3 {
		l.logger.Warn("no usable build id for " + binary + ", debug info will be missing from the archive")
		return domain.DebugArtifact{Binary: binary, Status: domain.DebugMissing}, nil
	}

	candidate := l.paths.BuildIDPath(buildID)
	if _, err := os.Stat(candidate); err != nil {
		l.logger.Warn("debug info for " + binary + " not found at " + candidate)
		return domain.DebugArtifact{Binary: binary, Status: domain.DebugMissing}, nil
	}
	return domain.DebugArtifact{Binary: binary, Status: domain.DebugFound, Path: candidate}, nil
}

// LocateAll classifies every binary concurrently. Results come back in
// input order regardless of completion order; the first inspection
// error cancels the remaining lookups.
func (l *Locator) LocateAll(ctx context.Context, binaries []string) ([]domain.DebugArtifact, error) {
	artifacts := make([]domain.DebugArtifact, len(binaries))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(runtime.NumCPU())
	for i, binary := range binaries {
		group.Go(func() error {
			artifact, err := l.Locate(ctx, binary)
			if err != nil {
				return zerr.With(err, "binary", binary)
			}
			artifacts[i] = artifact
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return artifacts, nil
}
