package kdump

import (
	"context"

	"github.com/delphix/savedump/internal/core/ports"
	"github.com/grindlemire/graft"
)

const NodeID graft.ID = "adapter.kdump"

func init() {
	graft.Register(graft.Node[ports.DumpReader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.DumpReader, error) {
			return NewReader(), nil
		},
	})
}
