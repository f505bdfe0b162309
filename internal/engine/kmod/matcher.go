// Package kmod matches kernel modules loaded in a system dump to their
// on-disk debug counterparts.
package kmod

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/delphix/savedump/internal/core/domain"
	"github.com/delphix/savedump/internal/core/ports"
	"go.trai.ch/zerr"
)

// Matcher resolves loaded-module records against a host debug-module tree.
//
// Module filenames are not a unique key across the fleet (same name,
// different build), so candidates are confirmed by comparing the file's
// embedded srcversion fingerprint against the one recorded in the dump.
type Matcher struct {
	lister    ports.ModuleLister
	inspector ports.ModuleInspector
	logger    ports.Logger
}

// NewMatcher creates a new Matcher.
func NewMatcher(lister ports.ModuleLister, inspector ports.ModuleInspector, logger ports.Logger) *Matcher {
	return &Matcher{lister: lister, inspector: inspector, logger: logger}
}

// Match walks the dump's module list and the moduleTree directory and
// returns the fingerprint-confirmed matches plus the names that never
// matched. Unresolved names are a soft failure: the caller reports them
// and archives what was found.
//
// Candidates are visited in filesystem-enumeration order and the first
// fingerprint match wins; a name resolves at most once. A later
// candidate for an already-resolved name whose fingerprint differs is
// logged as a collision diagnostic, never an error.
func (m *Matcher) Match(ctx context.Context, dumpPath, moduleTree string) (domain.ModuleMatch, []string, error) {
	records, err := m.lister.ListLoadedModules(ctx, dumpPath)
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to list loaded modules")
	}

	wanted := make(map[string]string, len(records))
	order := make([]string, 0, len(records))
	for _, record := range records {
		if _, dup := wanted[record.Name]; dup {
			continue
		}
		wanted[record.Name] = record.SrcVersion
		order = append(order, record.Name)
	}

	match := make(domain.ModuleMatch)
	if _, err := os.Stat(moduleTree); err != nil {
		m.logger.Warn("module tree not found: " + moduleTree)
	} else if err := m.scan(ctx, moduleTree, wanted, match); err != nil {
		return nil, nil, err
	}

	var unresolved []string
	for _, name := range order {
		if _, ok := match[name]; !ok {
			unresolved = append(unresolved, name)
		}
	}
	return match, unresolved, nil
}

func (m *Matcher) scan(ctx context.Context, moduleTree string, wanted map[string]string, match domain.ModuleMatch) error {
	return filepath.WalkDir(moduleTree, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return zerr.Wrap(err, "failed to enumerate module candidates")
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".ko") {
			return nil
		}

		name := strings.TrimSuffix(d.Name(), ".ko")
		recorded, loaded := wanted[name]
		if !loaded {
			return nil
		}

		fingerprint, err := m.inspector.SourceVersion(ctx, path)
		if err != nil {
			return err
		}

		if existing, resolved := match[name]; resolved {
			if fingerprint == recorded {
				m.logger.Warn("ignoring duplicate fingerprint match for " + name + ": " + path)
			} else {
				m.logger.Warn("fingerprint collision for " + name + ": " + path + " (kept " + existing + ")")
			}
			return nil
		}

		if fingerprint != recorded {
			return nil
		}
		match[name] = path
		return nil
	})
}
