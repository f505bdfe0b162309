package ports

import "github.com/delphix/savedump/internal/core/domain"

// DumpReader reads identifying attributes from a kernel crash dump header.
//
//go:generate mockgen -source=dump_reader.go -destination=mocks/mock_dump_reader.go -package=mocks
type DumpReader interface {
	ReadInfo(path string) (domain.KernelDumpInfo, error)
}
