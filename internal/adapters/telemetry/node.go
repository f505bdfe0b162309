package telemetry

import (
	"context"
	"os"

	"github.com/delphix/savedump/internal/adapters/telemetry/progrock"
	"github.com/delphix/savedump/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the telemetry adapter Graft node.
const NodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Tracer, error) {
			// Phase progress goes to the terminal when one is attached;
			// piped or redirected runs keep stderr to log output only.
			if stat, err := os.Stderr.Stat(); err == nil && stat.Mode()&os.ModeCharDevice != 0 {
				return progrock.NewRecorder(progrock.NewConsoleWriter(os.Stderr)), nil
			}
			return NewNoOpTracer(), nil
		},
	})
}
