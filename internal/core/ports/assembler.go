package ports

import (
	"context"

	"github.com/delphix/savedump/internal/core/domain"
)

// Assembler stages resolved artifacts, materializes launcher scripts and
// compresses the staging directory into <StagingName>.tar.gz in the
// working directory. The staging directory is removed on every exit
// path, success or failure.
//
//go:generate mockgen -source=assembler.go -destination=mocks/mock_assembler.go -package=mocks
type Assembler interface {
	Assemble(ctx context.Context, req domain.ArchiveRequest) (string, error)
}
