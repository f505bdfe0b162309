package probe

import (
	"context"

	"github.com/delphix/savedump/internal/adapters/logger"
	"github.com/delphix/savedump/internal/adapters/shell"
	"github.com/delphix/savedump/internal/core/ports"
	"github.com/grindlemire/graft"
)

const (
	// TypeProberNodeID identifies the file(1) probe Graft node.
	TypeProberNodeID graft.ID = "adapter.probe.file"
	// ElfInspectorNodeID identifies the readelf probe Graft node.
	ElfInspectorNodeID graft.ID = "adapter.probe.readelf"
	// ModuleInspectorNodeID identifies the modinfo probe Graft node.
	ModuleInspectorNodeID graft.ID = "adapter.probe.modinfo"
	// DebuggerNodeID identifies the gdb probe Graft node.
	DebuggerNodeID graft.ID = "adapter.probe.gdb"
	// LinkEnumeratorNodeID identifies the ldd probe Graft node.
	LinkEnumeratorNodeID graft.ID = "adapter.probe.ldd"
	// ModuleListerNodeID identifies the drgn probe Graft node.
	ModuleListerNodeID graft.ID = "adapter.probe.drgn"
)

func init() {
	graft.Register(graft.Node[ports.TypeProber]{
		ID:        TypeProberNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.TypeProber, error) {
			runner, err := graft.Dep[ports.Runner](ctx)
			if err != nil {
				return nil, err
			}
			return NewFileProber(runner), nil
		},
	})

	graft.Register(graft.Node[ports.BinaryInspector]{
		ID:        ElfInspectorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.BinaryInspector, error) {
			runner, err := graft.Dep[ports.Runner](ctx)
			if err != nil {
				return nil, err
			}
			return NewElfInspector(runner), nil
		},
	})

	graft.Register(graft.Node[ports.ModuleInspector]{
		ID:        ModuleInspectorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.ModuleInspector, error) {
			runner, err := graft.Dep[ports.Runner](ctx)
			if err != nil {
				return nil, err
			}
			return NewModinfoInspector(runner), nil
		},
	})

	graft.Register(graft.Node[ports.Debugger]{
		ID:        DebuggerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Debugger, error) {
			runner, err := graft.Dep[ports.Runner](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewGdbDebugger(runner, log), nil
		},
	})

	graft.Register(graft.Node[ports.LinkEnumerator]{
		ID:        LinkEnumeratorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.LinkEnumerator, error) {
			runner, err := graft.Dep[ports.Runner](ctx)
			if err != nil {
				return nil, err
			}
			return NewLddEnumerator(runner), nil
		},
	})

	graft.Register(graft.Node[ports.ModuleLister]{
		ID:        ModuleListerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.ModuleLister, error) {
			runner, err := graft.Dep[ports.Runner](ctx)
			if err != nil {
				return nil, err
			}
			return NewDrgnLister(runner), nil
		},
	})
}
