// Package app implements the application layer for savedump.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/delphix/savedump/internal/core/domain"
	"github.com/delphix/savedump/internal/core/ports"
	"github.com/delphix/savedump/internal/engine/classifier"
	"github.com/delphix/savedump/internal/engine/debuginfo"
	"github.com/delphix/savedump/internal/engine/kmod"
	"github.com/delphix/savedump/internal/engine/libraries"
	"go.trai.ch/zerr"
)

// App represents the main application logic: classify the dump once,
// resolve its debug closure, and package everything into a tarball in
// the working directory.
type App struct {
	classifier *classifier.Classifier
	reader     ports.DumpReader
	matcher    *kmod.Matcher
	resolver   *libraries.Resolver
	locator    *debuginfo.Locator
	assembler  ports.Assembler
	tracer     ports.Tracer
	paths      domain.Paths
	logger     ports.Logger
}

// New creates a new App instance.
func New(
	cls *classifier.Classifier,
	reader ports.DumpReader,
	matcher *kmod.Matcher,
	resolver *libraries.Resolver,
	locator *debuginfo.Locator,
	assembler ports.Assembler,
	tracer ports.Tracer,
	paths domain.Paths,
	logger ports.Logger,
) *App {
	return &App{
		classifier: cls,
		reader:     reader,
		matcher:    matcher,
		resolver:   resolver,
		locator:    locator,
		assembler:  assembler,
		tracer:     tracer,
		paths:      paths,
		logger:     logger,
	}
}

// Run archives the given dump and returns the path of the resulting
// tarball.
func (a *App) Run(ctx context.Context, dumpPath string) (string, error) {
	defer func() { _ = a.tracer.Close() }()

	kind, err := a.phaseClassify(ctx, dumpPath)
	if err != nil {
		return "", err
	}

	var req domain.ArchiveRequest
	switch kind {
	case domain.KindSystem:
		req, err = a.resolveSystemDump(ctx, dumpPath)
	case domain.KindProcess:
		req, err = a.resolveProcessDump(ctx, dumpPath)
	default:
		return "", zerr.With(domain.ErrUnknownDumpKind, "kind", kind.String())
	}
	if err != nil {
		return "", err
	}

	archivePath, err := a.phaseAssemble(ctx, req)
	if err != nil {
		return "", err
	}
	a.logger.Info("archive created: " + archivePath)
	return archivePath, nil
}

func (a *App) phaseClassify(ctx context.Context, dumpPath string) (domain.DumpKind, error) {
	ctx, span := a.tracer.Start(ctx, "classify dump")
	kind, err := a.classifier.Classify(ctx, dumpPath)
	if err != nil {
		span.RecordError(err)
		return kind, err
	}
	fmt.Fprintf(span, "dump type: %s\n", kind)
	span.End()
	a.logger.Info("dump type: " + kind.String())
	return kind, nil
}

// resolveSystemDump collects the kernel image and the
// fingerprint-matched debug modules for a kernel crash dump.
func (a *App) resolveSystemDump(ctx context.Context, dumpPath string) (domain.ArchiveRequest, error) {
	ctx, span := a.tracer.Start(ctx, "resolve kernel artifacts")
	req, err := a.systemRequest(ctx, span, dumpPath)
	if err != nil {
		span.RecordError(err)
		return domain.ArchiveRequest{}, err
	}
	span.End()
	return req, nil
}

func (a *App) systemRequest(ctx context.Context, span ports.Span, dumpPath string) (domain.ArchiveRequest, error) {
	info, err := a.reader.ReadInfo(dumpPath)
	if err != nil {
		return domain.ArchiveRequest{}, err
	}
	fmt.Fprintf(span, "kernel %s on %s\n", info.OSRelease, info.Nodename)

	vmlinux := a.paths.VmlinuxPath(info.OSRelease)
	if _, err := os.Stat(vmlinux); err != nil {
		return domain.ArchiveRequest{}, zerr.With(
			zerr.Wrap(domain.ErrVmlinuxNotFound, "cannot find vmlinux"),
			"path", vmlinux)
	}
	a.logger.Info("vmlinux found: " + vmlinux)

	match, unresolved, err := a.matcher.Match(ctx, dumpPath, a.paths.ModuleTree(info.OSRelease))
	if err != nil {
		return domain.ArchiveRequest{}, err
	}
	fmt.Fprintf(span, "found %d relevant modules with their debug info\n", len(match))
	if len(unresolved) > 0 {
		a.logger.Warn("could not find the debug info of the following modules: " +
			strings.Join(unresolved, ", "))
	}

	dumpName := filepath.Base(dumpPath)
	return domain.ArchiveRequest{
		StagingName: info.Nodename + ".archive-" + dumpName,
		RootFiles:   []string{dumpPath, vmlinux},
		MirrorFiles: match.Paths(),
		Scripts: []domain.LauncherScript{
			sdbScript(filepath.Base(vmlinux), dumpName, a.paths.ModuleRoot),
			pycrashScript(filepath.Base(vmlinux), dumpName, a.paths.ModuleRoot),
		},
	}, nil
}

// resolveProcessDump collects the originating executable, its
// shared-library closure and their separate debug files for a userland
// core dump.
func (a *App) resolveProcessDump(ctx context.Context, dumpPath string) (domain.ArchiveRequest, error) {
	ctx, span := a.tracer.Start(ctx, "resolve userland artifacts")
	req, err := a.processRequest(ctx, span, dumpPath)
	if err != nil {
		span.RecordError(err)
		return domain.ArchiveRequest{}, err
	}
	span.End()
	return req, nil
}

func (a *App) processRequest(ctx context.Context, span ports.Span, dumpPath string) (domain.ArchiveRequest, error) {
	closure, err := a.resolver.ResolveClosure(ctx, dumpPath)
	if err != nil {
		return domain.ArchiveRequest{}, err
	}
	fmt.Fprintf(span, "executable: %s, %d shared libraries\n", closure.Binary, len(closure.Libraries))

	artifacts, err := a.locator.LocateAll(ctx, closure.Binaries())
	if err != nil {
		return domain.ArchiveRequest{}, err
	}

	mirror := closure.Binaries()
	for _, artifact := range artifacts {
		if artifact.Status == domain.DebugFound {
			mirror = append(mirror, artifact.Path)
		}
	}

	dumpName := filepath.Base(dumpPath)
	return domain.ArchiveRequest{
		StagingName: "archive-" + dumpName,
		RootFiles:   []string{dumpPath},
		MirrorFiles: mirror,
		Scripts: []domain.LauncherScript{
			gdbScript(closure.Binary, dumpName, a.paths.DebugRoot),
		},
	}, nil
}

func (a *App) phaseAssemble(ctx context.Context, req domain.ArchiveRequest) (string, error) {
	ctx, span := a.tracer.Start(ctx, "assemble archive")
	archivePath, err := a.assembler.Assemble(ctx, req)
	if err != nil {
		span.RecordError(err)
		return "", err
	}
	fmt.Fprintf(span, "archive created: %s\n", archivePath)
	span.End()
	return archivePath, nil
}
