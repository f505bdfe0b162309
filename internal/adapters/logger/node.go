package logger

import (
	"context"

	"github.com/delphix/savedump/internal/core/ports"
	"github.com/grindlemire/graft"
)

const NodeID graft.ID = "adapter.logger"

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Logger, error) {
			return New(), nil
		},
	})
}
