// Package kdump reads the header of a compressed kernel crash dump.
//
// The makedumpfile disk_dump_header starts with an 8-byte "KDUMP   "
// signature, a 4-byte header version, and the crashed kernel's utsname
// block (six 65-byte NUL-terminated fields). That is everything needed
// to name the archive and key the debug-module tree, so no external
// library is involved.
package kdump

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"

	"github.com/delphix/savedump/internal/core/domain"
	"github.com/delphix/savedump/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	signature = "KDUMP   "

	utsnameFieldLen = 65
	utsnameOffset   = len(signature) + 4
	headerLen       = utsnameOffset + 6*utsnameFieldLen

	// utsname field order: sysname, nodename, release, version,
	// machine, domainname.
	nodenameField = 1
	releaseField  = 2
)

var _ ports.DumpReader = (*Reader)(nil)

// Reader implements ports.DumpReader for compressed kdump files.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// ReadInfo extracts the crashed machine's nodename and kernel release
// from the dump header.
func (r *Reader) ReadInfo(path string) (domain.KernelDumpInfo, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by the operator
	if err != nil {
		return domain.KernelDumpInfo{}, zerr.With(zerr.Wrap(err, "failed to open dump"), "path", path)
	}
	defer f.Close() //nolint:errcheck // read-only file

	header := make([]byte, headerLen)
	if _, err := io.ReadFull(f, header); err != nil {
		return domain.KernelDumpInfo{}, zerr.With(zerr.Wrap(domain.ErrBadDumpHeader, "dump too short"), "path", path)
	}

	if !bytes.Equal(header[:len(signature)], []byte(signature)) {
		return domain.KernelDumpInfo{}, zerr.With(zerr.Wrap(domain.ErrBadDumpHeader, "missing kdump signature"), "path", path)
	}

	if v := binary.LittleEndian.Uint32(header[len(signature):utsnameOffset]); v == 0 {
		return domain.KernelDumpInfo{}, zerr.With(zerr.Wrap(domain.ErrBadDumpHeader, "unsupported header version"), "path", path)
	}

	info := domain.KernelDumpInfo{
		Nodename:  utsnameField(header, nodenameField),
		OSRelease: utsnameField(header, releaseField),
	}
	if info.OSRelease == "" {
		return domain.KernelDumpInfo{}, zerr.With(zerr.Wrap(domain.ErrBadDumpHeader, "empty os release"), "path", path)
	}
	return info, nil
}

func utsnameField(header []byte, index int) string {
	start := utsnameOffset + index*utsnameFieldLen
	field := header[start : start+utsnameFieldLen]
	if i := bytes.IndexByte(field, 0); i >= 0 {
		field = field[:i]
	}
	return string(field)
}
