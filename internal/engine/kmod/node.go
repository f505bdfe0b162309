package kmod

import (
	"context"

	"github.com/delphix/savedump/internal/adapters/logger"
	"github.com/delphix/savedump/internal/adapters/probe"
	"github.com/delphix/savedump/internal/core/ports"
	"github.com/grindlemire/graft"
)

const NodeID graft.ID = "engine.kmod"

func init() {
	graft.Register(graft.Node[*Matcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{probe.ModuleListerNodeID, probe.ModuleInspectorNodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Matcher, error) {
			lister, err := graft.Dep[ports.ModuleLister](ctx)
			if err != nil {
				return nil, err
			}
			inspector, err := graft.Dep[ports.ModuleInspector](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewMatcher(lister, inspector, log), nil
		},
	})
}
