package config

import (
	"context"

	"github.com/delphix/savedump/internal/core/ports"
	"github.com/grindlemire/graft"
)

const NodeID graft.ID = "adapter.config"

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ConfigLoader, error) {
			return NewFileConfigLoader("."), nil
		},
	})
}
