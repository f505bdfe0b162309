package app

import (
	"fmt"

	"github.com/delphix/savedump/internal/core/domain"
)

// Launcher scripts self-locate so the extracted archive works from any
// directory. Mirrored artifacts sit beneath the script's directory at
// their original absolute paths, so the host roots concatenate directly
// onto $script_dir.

const sdbTemplate = `#!/bin/bash

script_path=$(readlink -f "$0")
script_dir=$(dirname "$script_path")

sdb -s $script_dir%s \
    $script_dir/%s $script_dir/%s
`

const pycrashTemplate = `#!/bin/bash

script_path=$(readlink -f "$0")
script_dir=$(dirname "$script_path")

crash.sh -m $script_dir%s \
    $script_dir/%s $script_dir/%s
`

const gdbTemplate = `#!/bin/bash

script_path=$(readlink -f "$0")
script_dir=$(dirname "$script_path")

#
# Option explanations:
# "set print thread-events off"
#    Supress thread creation/exit messages.
#
# "set sysroot $script_dir"
#    Set the script's directory as system root. This is
#    needed to make GDB look at the correct symbols (e.g
#    the ones in the archive, not the ones from the
#    system).
#
# "set debug-file-directory $script_dir%s"
#    Similarly to sysroot, point GDB to the right
#    debug info links.
#
gdb -iex "set print thread-events off" \
    -iex "set sysroot $script_dir" \
    -iex "set debug-file-directory $script_dir%s" \
    -iex "file $script_dir%s" \
    -iex "core-file $script_dir/%s"
`

func sdbScript(vmlinuxName, dumpName, moduleRoot string) domain.LauncherScript {
	return domain.LauncherScript{
		Name:     "run-sdb.sh",
		Contents: fmt.Sprintf(sdbTemplate, moduleRoot, vmlinuxName, dumpName),
	}
}

func pycrashScript(vmlinuxName, dumpName, moduleRoot string) domain.LauncherScript {
	return domain.LauncherScript{
		Name:     "run-pycrash.sh",
		Contents: fmt.Sprintf(pycrashTemplate, moduleRoot, vmlinuxName, dumpName),
	}
}

func gdbScript(binaryPath, dumpName, debugRoot string) domain.LauncherScript {
	return domain.LauncherScript{
		Name:     "run-gdb.sh",
		Contents: fmt.Sprintf(gdbTemplate, debugRoot, debugRoot, binaryPath, dumpName),
	}
}
