package archive

import (
	"context"

	"github.com/delphix/savedump/internal/adapters/logger"
	"github.com/delphix/savedump/internal/core/ports"
	"github.com/grindlemire/graft"
)

const NodeID graft.ID = "adapter.archive"

func init() {
	graft.Register(graft.Node[ports.Assembler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Assembler, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewAssembler(log), nil
		},
	})
}
