// Package config provides the configuration loader for savedump.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/delphix/savedump/internal/core/domain"
	"github.com/delphix/savedump/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Filename is the optional config file looked up in the working
// directory. When absent, the conventional host roots are used.
const Filename = "savedump.yaml"

var _ ports.ConfigLoader = (*FileConfigLoader)(nil)

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct {
	// Dir is the directory searched for the config file.
	Dir string
}

// NewFileConfigLoader creates a loader searching the given directory.
func NewFileConfigLoader(dir string) *FileConfigLoader {
	return &FileConfigLoader{Dir: dir}
}

// savedumpFile represents the structure of the savedump.yaml file.
type savedumpFile struct {
	DebugRoot  string `yaml:"debugRoot"`
	ModuleRoot string `yaml:"moduleRoot"`
}

// Load reads the config file if present and overlays it on the defaults.
func (l *FileConfigLoader) Load() (domain.Paths, error) {
	paths := domain.DefaultPaths()

	data, err := os.ReadFile(filepath.Join(l.Dir, Filename)) //nolint:gosec // operator-controlled directory
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return paths, nil
		}
		return domain.Paths{}, zerr.Wrap(err, "failed to read config file")
	}

	var file savedumpFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.Paths{}, zerr.Wrap(domain.ErrConfigParseFailed, err.Error())
	}

	if file.DebugRoot != "" {
		paths.DebugRoot = file.DebugRoot
	}
	if file.ModuleRoot != "" {
		paths.ModuleRoot = file.ModuleRoot
	}
	return paths, nil
}
