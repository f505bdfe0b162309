package archive

import (
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
)

// copyFile copies src to dest preserving the source mode and returns the
// xxhash64 content digest computed during the copy.
func copyFile(src, dest string) (string, error) {
	in, err := os.Open(src) //nolint:gosec // sources come from resolved artifacts
	if err != nil {
		return "", err
	}
	defer in.Close() //nolint:errcheck // read-only file

	info, err := in.Stat()
	if err != nil {
		return "", err
	}

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm()) //nolint:gosec // dest is inside the staging dir
	if err != nil {
		return "", err
	}

	hasher := xxhash.New()
	if _, err := io.Copy(io.MultiWriter(out, hasher), in); err != nil {
		_ = out.Close()
		return "", err
	}
	if err := out.Close(); err != nil {
		return "", err
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}
