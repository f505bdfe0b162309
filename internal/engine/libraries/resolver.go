// Package libraries resolves the shared-object closure of a process
// core dump.
package libraries

import (
	"context"
	"os"
	"regexp"

	"github.com/delphix/savedump/internal/core/domain"
	"github.com/delphix/savedump/internal/core/ports"
	"go.trai.ch/zerr"
)

// The originating executable is embedded in the core's file-type
// description, e.g. "..., execfn: '/sbin/ztest', platform: ...".
var execfnPattern = regexp.MustCompile(`execfn: '(.+?)',`)

// Resolver computes the executable plus shared-library closure needed
// to debug a process core on another machine.
//
// The debugger strategy is authoritative because it sees libraries
// mapped at runtime with dlopen(3). The static link enumerator is only
// consulted when the debugger invocation itself fails; an empty library
// list from a strategy that ran is a valid answer, not a failure.
type Resolver struct {
	prober     ports.TypeProber
	debugger   ports.Debugger
	enumerator ports.LinkEnumerator
	logger     ports.Logger
}

// NewResolver creates a new Resolver.
func NewResolver(prober ports.TypeProber, debugger ports.Debugger, enumerator ports.LinkEnumerator, logger ports.Logger) *Resolver {
	return &Resolver{prober: prober, debugger: debugger, enumerator: enumerator, logger: logger}
}

// BinaryFromCore extracts the path of the executable that produced the
// core dump.
func (r *Resolver) BinaryFromCore(ctx context.Context, corePath string) (string, error) {
	description, err := r.prober.Describe(ctx, corePath)
	if err != nil {
		return "", zerr.Wrap(err, "failed to probe core dump")
	}

	groups := execfnPattern.FindStringSubmatch(description)
	if groups == nil {
		return "", zerr.With(
			zerr.Wrap(domain.ErrBinaryNotFound, "core dump does not record its executable"),
			"core", corePath)
	}

	binary := groups[1]
	if _, err := os.Stat(binary); err != nil {
		return "", zerr.With(
			zerr.Wrap(domain.ErrBinaryNotFound, "executable recorded in core dump does not exist"),
			"binary", binary)
	}
	return binary, nil
}

// ResolveClosure returns the core's executable together with the
// deduplicated, order-preserving list of shared libraries it had
// mapped.
func (r *Resolver) ResolveClosure(ctx context.Context, corePath string) (domain.DependencyClosure, error) {
	binary, err := r.BinaryFromCore(ctx, corePath)
	if err != nil {
		return domain.DependencyClosure{}, err
	}

	libraries, err := r.debugger.ListLoadedLibraries(ctx, corePath, binary)
	if err != nil {
		r.logger.Warn("debugger failed to enumerate libraries, falling back to link-time dependencies")
		libraries, err = r.enumerator.ListLinkedLibraries(ctx, binary)
		if err != nil {
			return domain.DependencyClosure{}, zerr.Wrap(domain.ErrDependencyToolsUnavailable, err.Error())
		}
	}

	return domain.NewDependencyClosure(binary, libraries), nil
}
