package kdump_test

import (
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/delphix/savedump/internal/adapters/kdump"
	"github.com/delphix/savedump/internal/core/domain"
	"github.com/stretchr/testify/require"
)

func writeHeader(t *testing.T, nodename, release string) string {
	t.Helper()

	header := make([]byte, 8+4+6*65)
	copy(header, "KDUMP   ")
	binary.LittleEndian.PutUint32(header[8:12], 6)
	copy(header[12:], "Linux")           // sysname
	copy(header[12+65:], nodename)       // nodename
	copy(header[12+2*65:], release)      // release
	copy(header[12+4*65:], "x86_64")     // machine

	path := filepath.Join(t.TempDir(), "dump.201234")
	require.NoError(t, os.WriteFile(path, header, 0o644))
	return path
}

func TestReader_ReadInfo(t *testing.T) {
	path := writeHeader(t, "myhost", "5.4.0-1017-dx")

	info, err := kdump.NewReader().ReadInfo(path)
	require.NoError(t, err)
	require.Equal(t, domain.KernelDumpInfo{
		Nodename:  "myhost",
		OSRelease: "5.4.0-1017-dx",
	}, info)
}

func TestReader_ReadInfo_BadSignature(t *testing.T) {
	path := filepath.Join(t.TempDir(), "core.1234")
	require.NoError(t, os.WriteFile(path, make([]byte, 1024), 0o644))

	_, err := kdump.NewReader().ReadInfo(path)
	require.Error(t, err)
	require.True(t, errors.Is(err, domain.ErrBadDumpHeader))
}

func TestReader_ReadInfo_Truncated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dump.short")
	require.NoError(t, os.WriteFile(path, []byte("KDUMP   "), 0o644))

	_, err := kdump.NewReader().ReadInfo(path)
	require.Error(t, err)
	require.True(t, errors.Is(err, domain.ErrBadDumpHeader))
}
