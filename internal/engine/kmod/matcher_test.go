package kmod_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/delphix/savedump/internal/core/domain"
	"github.com/delphix/savedump/internal/core/ports/mocks"
	"github.com/delphix/savedump/internal/engine/kmod"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const dumpPath = "/var/crash/dump.201234"

func writeModule(t *testing.T, tree string, rel string) string {
	t.Helper()
	path := filepath.Join(tree, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("ko"), 0o644))
	return path
}

func TestMatch_FingerprintConfirmed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tree := t.TempDir()
	zfsKo := writeModule(t, tree, "extra/zfs.ko")
	icpKo := writeModule(t, tree, "extra/icp.ko")
	writeModule(t, tree, "kernel/unrelated.ko")

	lister := mocks.NewMockModuleLister(ctrl)
	lister.EXPECT().ListLoadedModules(gomock.Any(), dumpPath).Return([]domain.ModuleRecord{
		{Name: "zfs", SrcVersion: "AAA"},
		{Name: "icp", SrcVersion: "BBB"},
	}, nil)

	inspector := mocks.NewMockModuleInspector(ctrl)
	inspector.EXPECT().SourceVersion(gomock.Any(), zfsKo).Return("AAA", nil)
	inspector.EXPECT().SourceVersion(gomock.Any(), icpKo).Return("BBB", nil)

	logger := mocks.NewMockLogger(ctrl)

	matcher := kmod.NewMatcher(lister, inspector, logger)

	match, unresolved, err := matcher.Match(context.Background(), dumpPath, tree)
	require.NoError(t, err)
	require.Empty(t, unresolved)
	require.Equal(t, domain.ModuleMatch{"zfs": zfsKo, "icp": icpKo}, match)
}

func TestMatch_WrongFingerprintIsUnresolved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tree := t.TempDir()
	zfsKo := writeModule(t, tree, "extra/zfs.ko")

	lister := mocks.NewMockModuleLister(ctrl)
	lister.EXPECT().ListLoadedModules(gomock.Any(), dumpPath).Return([]domain.ModuleRecord{
		{Name: "zfs", SrcVersion: "AAA"},
		{Name: "spl", SrcVersion: "CCC"},
	}, nil)

	inspector := mocks.NewMockModuleInspector(ctrl)
	inspector.EXPECT().SourceVersion(gomock.Any(), zfsKo).Return("STALE", nil)

	logger := mocks.NewMockLogger(ctrl)

	matcher := kmod.NewMatcher(lister, inspector, logger)

	match, unresolved, err := matcher.Match(context.Background(), dumpPath, tree)
	require.NoError(t, err)
	require.Empty(t, match)
	require.Equal(t, []string{"zfs", "spl"}, unresolved)
}

func TestMatch_FirstMatchWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tree := t.TempDir()
	// Lexical walk order: extra/ before kernel/.
	first := writeModule(t, tree, "extra/zfs.ko")
	second := writeModule(t, tree, "kernel/zfs.ko")

	lister := mocks.NewMockModuleLister(ctrl)
	lister.EXPECT().ListLoadedModules(gomock.Any(), dumpPath).Return([]domain.ModuleRecord{
		{Name: "zfs", SrcVersion: "AAA"},
	}, nil)

	inspector := mocks.NewMockModuleInspector(ctrl)
	inspector.EXPECT().SourceVersion(gomock.Any(), first).Return("AAA", nil)
	inspector.EXPECT().SourceVersion(gomock.Any(), second).Return("DDD", nil)

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Warn(gomock.Any()).Times(1)

	matcher := kmod.NewMatcher(lister, inspector, logger)

	match, unresolved, err := matcher.Match(context.Background(), dumpPath, tree)
	require.NoError(t, err)
	require.Empty(t, unresolved)
	require.Equal(t, domain.ModuleMatch{"zfs": first}, match)
}

func TestMatch_MissingTreeIsSoft(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lister := mocks.NewMockModuleLister(ctrl)
	lister.EXPECT().ListLoadedModules(gomock.Any(), dumpPath).Return([]domain.ModuleRecord{
		{Name: "zfs", SrcVersion: "AAA"},
	}, nil)

	inspector := mocks.NewMockModuleInspector(ctrl)

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Warn(gomock.Any()).Times(1)

	matcher := kmod.NewMatcher(lister, inspector, logger)

	match, unresolved, err := matcher.Match(context.Background(), dumpPath, filepath.Join(t.TempDir(), "no-such-release"))
	require.NoError(t, err)
	require.Empty(t, match)
	require.Equal(t, []string{"zfs"}, unresolved)
}

func TestMatch_ListerFailureIsFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lister := mocks.NewMockModuleLister(ctrl)
	lister.EXPECT().ListLoadedModules(gomock.Any(), dumpPath).Return(nil, domain.ErrToolMissing)

	inspector := mocks.NewMockModuleInspector(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	matcher := kmod.NewMatcher(lister, inspector, logger)

	_, _, err := matcher.Match(context.Background(), dumpPath, t.TempDir())
	require.Error(t, err)
	require.True(t, errors.Is(err, domain.ErrToolMissing))
}
