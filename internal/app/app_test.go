package app_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/delphix/savedump/internal/adapters/telemetry"
	"github.com/delphix/savedump/internal/app"
	"github.com/delphix/savedump/internal/core/domain"
	"github.com/delphix/savedump/internal/core/ports/mocks"
	"github.com/delphix/savedump/internal/engine/classifier"
	"github.com/delphix/savedump/internal/engine/debuginfo"
	"github.com/delphix/savedump/internal/engine/kmod"
	"github.com/delphix/savedump/internal/engine/libraries"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	prober    *mocks.MockTypeProber
	reader    *mocks.MockDumpReader
	lister    *mocks.MockModuleLister
	modinfo   *mocks.MockModuleInspector
	debugger  *mocks.MockDebugger
	ldd       *mocks.MockLinkEnumerator
	inspector *mocks.MockBinaryInspector
	assembler *mocks.MockAssembler
	logger    *mocks.MockLogger
}

func newFixture(t *testing.T, ctrl *gomock.Controller, paths domain.Paths) (*app.App, *fixture) {
	t.Helper()
	f := &fixture{
		prober:    mocks.NewMockTypeProber(ctrl),
		reader:    mocks.NewMockDumpReader(ctrl),
		lister:    mocks.NewMockModuleLister(ctrl),
		modinfo:   mocks.NewMockModuleInspector(ctrl),
		debugger:  mocks.NewMockDebugger(ctrl),
		ldd:       mocks.NewMockLinkEnumerator(ctrl),
		inspector: mocks.NewMockBinaryInspector(ctrl),
		assembler: mocks.NewMockAssembler(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
	}
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	f.logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	a := app.New(
		classifier.New(f.prober),
		f.reader,
		kmod.NewMatcher(f.lister, f.modinfo, f.logger),
		libraries.NewResolver(f.prober, f.debugger, f.ldd, f.logger),
		debuginfo.NewLocator(f.inspector, paths, f.logger),
		f.assembler,
		telemetry.NewNoOpTracer(),
		paths,
		f.logger,
	)
	return a, f
}

func TestRun_KernelDump(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	root := t.TempDir()
	paths := domain.Paths{
		DebugRoot:  root,
		ModuleRoot: filepath.Join(root, "lib", "modules"),
	}

	vmlinux := paths.VmlinuxPath("5.4.0-1017-dx")
	require.NoError(t, os.MkdirAll(filepath.Dir(vmlinux), 0o755))
	require.NoError(t, os.WriteFile(vmlinux, []byte("vmlinux"), 0o644))

	zfsKo := filepath.Join(paths.ModuleTree("5.4.0-1017-dx"), "extra", "zfs.ko")
	require.NoError(t, os.MkdirAll(filepath.Dir(zfsKo), 0o755))
	require.NoError(t, os.WriteFile(zfsKo, []byte("ko"), 0o644))

	a, f := newFixture(t, ctrl, paths)

	dumpPath := filepath.Join(root, "dump.201234")
	f.prober.EXPECT().Describe(gomock.Any(), dumpPath).
		Return(dumpPath+": Kdump compressed dump v6, system Linux 5.4.0-1017-dx\n", nil)
	f.reader.EXPECT().ReadInfo(dumpPath).
		Return(domain.KernelDumpInfo{Nodename: "dxnode", OSRelease: "5.4.0-1017-dx"}, nil)
	f.lister.EXPECT().ListLoadedModules(gomock.Any(), dumpPath).
		Return([]domain.ModuleRecord{{Name: "zfs", SrcVersion: "AAA"}}, nil)
	f.modinfo.EXPECT().SourceVersion(gomock.Any(), zfsKo).Return("AAA", nil)

	var captured domain.ArchiveRequest
	f.assembler.EXPECT().Assemble(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req domain.ArchiveRequest) (string, error) {
			captured = req
			return req.StagingName + ".tar.gz", nil
		})

	archivePath, err := a.Run(context.Background(), dumpPath)
	require.NoError(t, err)
	require.Equal(t, "dxnode.archive-dump.201234.tar.gz", archivePath)

	require.Equal(t, "dxnode.archive-dump.201234", captured.StagingName)
	require.Equal(t, []string{dumpPath, vmlinux}, captured.RootFiles)
	require.Equal(t, []string{zfsKo}, captured.MirrorFiles)
	require.Len(t, captured.Scripts, 2)
	require.Equal(t, "run-sdb.sh", captured.Scripts[0].Name)
	require.Equal(t, "run-pycrash.sh", captured.Scripts[1].Name)
	require.Contains(t, captured.Scripts[0].Contents, "sdb -s $script_dir"+paths.ModuleRoot)
	require.Contains(t, captured.Scripts[0].Contents, "vmlinux-5.4.0-1017-dx")
}

func TestRun_KernelDumpWithoutVmlinuxIsFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	paths := domain.Paths{DebugRoot: t.TempDir()}
	a, f := newFixture(t, ctrl, paths)

	f.prober.EXPECT().Describe(gomock.Any(), "/var/crash/dump.1").
		Return("/var/crash/dump.1: Kdump compressed dump v6\n", nil)
	f.reader.EXPECT().ReadInfo("/var/crash/dump.1").
		Return(domain.KernelDumpInfo{Nodename: "dxnode", OSRelease: "5.4.0-1017-dx"}, nil)

	_, err := a.Run(context.Background(), "/var/crash/dump.1")
	require.True(t, errors.Is(err, domain.ErrVmlinuxNotFound))
}

func TestRun_ProcessDump(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	root := t.TempDir()
	paths := domain.Paths{DebugRoot: root}
	a, f := newFixture(t, ctrl, paths)

	binary := filepath.Join(root, "ztest")
	require.NoError(t, os.WriteFile(binary, []byte{0x7f, 'E', 'L', 'F'}, 0o755))

	const buildID = "90558158ed80a4dd5b2c79c6c2b99b6e996c8f9d"
	debugFile := paths.BuildIDPath(buildID)
	require.NoError(t, os.MkdirAll(filepath.Dir(debugFile), 0o755))
	require.NoError(t, os.WriteFile(debugFile, []byte("dwarf"), 0o644))

	dumpPath := filepath.Join(root, "core.1234")
	f.prober.EXPECT().Describe(gomock.Any(), dumpPath).
		Return(dumpPath+": ELF 64-bit LSB core file, execfn: '"+binary+"', platform: 'x86_64'\n", nil)
	f.debugger.EXPECT().ListLoadedLibraries(gomock.Any(), dumpPath, binary).
		Return([]string{"/lib/libc.so.6"}, nil)
	f.inspector.EXPECT().HasEmbeddedDebugInfo(gomock.Any(), binary).Return(false, nil)
	f.inspector.EXPECT().BuildID(gomock.Any(), binary).Return(buildID, nil)
	f.inspector.EXPECT().HasEmbeddedDebugInfo(gomock.Any(), "/lib/libc.so.6").Return(true, nil)

	var captured domain.ArchiveRequest
	f.assembler.EXPECT().Assemble(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req domain.ArchiveRequest) (string, error) {
			captured = req
			return req.StagingName + ".tar.gz", nil
		})

	archivePath, err := a.Run(context.Background(), dumpPath)
	require.NoError(t, err)
	require.Equal(t, "archive-core.1234.tar.gz", archivePath)

	require.Equal(t, []string{dumpPath}, captured.RootFiles)
	require.Equal(t, []string{binary, "/lib/libc.so.6", debugFile}, captured.MirrorFiles)
	require.Len(t, captured.Scripts, 1)
	require.Equal(t, "run-gdb.sh", captured.Scripts[0].Name)
	require.True(t, strings.Contains(captured.Scripts[0].Contents, "set sysroot $script_dir"))
	require.Contains(t, captured.Scripts[0].Contents, "file $script_dir"+binary)
}

func TestRun_UnknownDumpKind(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, f := newFixture(t, ctrl, domain.DefaultPaths())

	f.prober.EXPECT().Describe(gomock.Any(), "/tmp/notes.txt").
		Return("/tmp/notes.txt: ASCII text\n", nil)

	_, err := a.Run(context.Background(), "/tmp/notes.txt")
	require.True(t, errors.Is(err, domain.ErrUnknownDumpKind))
}
