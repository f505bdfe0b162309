package probe

import (
	"context"
	"os"
	"strings"

	"github.com/delphix/savedump/internal/core/domain"
	"github.com/delphix/savedump/internal/core/ports"
	"go.trai.ch/zerr"
)

// moduleListScript walks the crashed kernel's module list and prints one
// "name srcversion" pair per line.
//
// Matching is done on srcversion rather than build-id because there is
// no straightforward way to read the build-id section of the ELF images
// recorded inside the dump.
const moduleListScript = `from drgn.helpers.linux.list import list_for_each_entry
for mod in list_for_each_entry('struct module', prog['modules'].address_of_(), 'list'):
    print(mod.name.string_().decode(), mod.srcversion.string_().decode())
`

var _ ports.ModuleLister = (*DrgnLister)(nil)

// DrgnLister implements ports.ModuleLister by running drgn(1) in batch
// mode against the dump.
type DrgnLister struct {
	runner ports.Runner
}

// NewDrgnLister creates a new DrgnLister.
func NewDrgnLister(runner ports.Runner) *DrgnLister {
	return &DrgnLister{runner: runner}
}

// ListLoadedModules returns the name and version fingerprint of every
// module loaded in the crashed kernel.
func (l *DrgnLister) ListLoadedModules(ctx context.Context, dumpPath string) ([]domain.ModuleRecord, error) {
	script, err := os.CreateTemp("", "savedump-modlist-*.py")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to stage module list script")
	}
	defer os.Remove(script.Name()) //nolint:errcheck // best effort cleanup

	if _, err := script.WriteString(moduleListScript); err != nil {
		_ = script.Close()
		return nil, zerr.Wrap(err, "failed to stage module list script")
	}
	if err := script.Close(); err != nil {
		return nil, zerr.Wrap(err, "failed to stage module list script")
	}

	out, err := l.runner.Run(ctx, "drgn", "-q", "-c", dumpPath, script.Name())
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "module list walk failed"), "dump", dumpPath)
	}
	return parseModuleList(out), nil
}

func parseModuleList(out string) []domain.ModuleRecord {
	var records []domain.ModuleRecord
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			continue
		}
		records = append(records, domain.ModuleRecord{
			Name:       fields[0],
			SrcVersion: fields[1],
		})
	}
	return records
}
