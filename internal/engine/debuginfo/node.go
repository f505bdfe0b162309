package debuginfo

import (
	"context"

	"github.com/delphix/savedump/internal/adapters/config"
	"github.com/delphix/savedump/internal/adapters/logger"
	"github.com/delphix/savedump/internal/adapters/probe"
	"github.com/delphix/savedump/internal/core/ports"
	"github.com/grindlemire/graft"
)

const NodeID graft.ID = "engine.debuginfo"

func init() {
	graft.Register(graft.Node[*Locator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{probe.ElfInspectorNodeID, config.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Locator, error) {
			inspector, err := graft.Dep[ports.BinaryInspector](ctx)
			if err != nil {
				return nil, err
			}
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			paths, err := loader.Load()
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLocator(inspector, paths, log), nil
		},
	})
}
