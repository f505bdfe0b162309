package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/delphix/savedump/internal/adapters/config"
	"github.com/delphix/savedump/internal/core/domain"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	loader := config.NewFileConfigLoader(t.TempDir())

	paths, err := loader.Load()
	require.NoError(t, err)
	require.Equal(t, domain.DefaultPaths(), paths)
}

func TestLoad_Overrides(t *testing.T) {
	dir := t.TempDir()
	content := "debugRoot: /custom/debug\nmoduleRoot: /custom/debug/lib/modules\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.Filename), []byte(content), 0o644))

	loader := config.NewFileConfigLoader(dir)

	paths, err := loader.Load()
	require.NoError(t, err)
	require.Equal(t, "/custom/debug", paths.DebugRoot)
	require.Equal(t, "/custom/debug/lib/modules", paths.ModuleRoot)
}

func TestLoad_PartialOverride(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.Filename), []byte("debugRoot: /custom/debug\n"), 0o644))

	loader := config.NewFileConfigLoader(dir)

	paths, err := loader.Load()
	require.NoError(t, err)
	require.Equal(t, "/custom/debug", paths.DebugRoot)
	require.Equal(t, domain.DefaultPaths().ModuleRoot, paths.ModuleRoot)
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.Filename), []byte("debugRoot: [unclosed\n"), 0o644))

	loader := config.NewFileConfigLoader(dir)

	_, err := loader.Load()
	require.Error(t, err)
	require.True(t, errors.Is(err, domain.ErrConfigParseFailed))
}
