// Package classifier decides what kind of crash artifact a dump is.
package classifier

import (
	"context"
	"strings"

	"github.com/delphix/savedump/internal/core/domain"
	"github.com/delphix/savedump/internal/core/ports"
	"go.trai.ch/zerr"
)

// Marker substrings looked up in the file-type probe's description.
const (
	systemDumpMarker  = "Kdump compressed dump"
	processDumpMarker = "core file"
)

// Classifier inspects a crash artifact and determines its kind.
type Classifier struct {
	prober ports.TypeProber
}

// New creates a new Classifier.
func New(prober ports.TypeProber) *Classifier {
	return &Classifier{prober: prober}
}

// Classify probes the artifact's file type and returns its kind. An
// artifact matching neither marker is fatal: no archive can be produced
// for a dump savedump does not understand.
func (c *Classifier) Classify(ctx context.Context, path string) (domain.DumpKind, error) {
	description, err := c.prober.Describe(ctx, path)
	if err != nil {
		return domain.KindUnknown, err
	}

	switch {
	case strings.Contains(description, systemDumpMarker):
		return domain.KindSystem, nil
	case strings.Contains(description, processDumpMarker):
		return domain.KindProcess, nil
	default:
		return domain.KindUnknown, zerr.With(domain.ErrUnknownDumpKind, "path", path)
	}
}
