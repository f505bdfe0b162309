package libraries

import (
	"context"

	"github.com/delphix/savedump/internal/adapters/logger"
	"github.com/delphix/savedump/internal/adapters/probe"
	"github.com/delphix/savedump/internal/core/ports"
	"github.com/grindlemire/graft"
)

const NodeID graft.ID = "engine.libraries"

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			probe.TypeProberNodeID,
			probe.DebuggerNodeID,
			probe.LinkEnumeratorNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Resolver, error) {
			prober, err := graft.Dep[ports.TypeProber](ctx)
			if err != nil {
				return nil, err
			}
			debugger, err := graft.Dep[ports.Debugger](ctx)
			if err != nil {
				return nil, err
			}
			enumerator, err := graft.Dep[ports.LinkEnumerator](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(prober, debugger, enumerator, log), nil
		},
	})
}
