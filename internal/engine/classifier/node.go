package classifier

import (
	"context"

	"github.com/delphix/savedump/internal/adapters/probe"
	"github.com/delphix/savedump/internal/core/ports"
	"github.com/grindlemire/graft"
)

const NodeID graft.ID = "engine.classifier"

func init() {
	graft.Register(graft.Node[*Classifier]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{probe.TypeProberNodeID},
		Run: func(ctx context.Context) (*Classifier, error) {
			prober, err := graft.Dep[ports.TypeProber](ctx)
			if err != nil {
				return nil, err
			}
			return New(prober), nil
		},
	})
}
