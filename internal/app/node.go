package app

import (
	"context"

	"github.com/delphix/savedump/internal/adapters/archive"
	"github.com/delphix/savedump/internal/adapters/config"
	"github.com/delphix/savedump/internal/adapters/kdump"
	"github.com/delphix/savedump/internal/adapters/logger"
	"github.com/delphix/savedump/internal/adapters/telemetry"
	"github.com/delphix/savedump/internal/core/ports"
	"github.com/delphix/savedump/internal/engine/classifier"
	"github.com/delphix/savedump/internal/engine/debuginfo"
	"github.com/delphix/savedump/internal/engine/kmod"
	"github.com/delphix/savedump/internal/engine/libraries"
	"github.com/grindlemire/graft"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			classifier.NodeID,
			kdump.NodeID,
			kmod.NodeID,
			libraries.NodeID,
			debuginfo.NodeID,
			archive.NodeID,
			telemetry.NodeID,
			config.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	cls, err := graft.Dep[*classifier.Classifier](ctx)
	if err != nil {
		return nil, err
	}

	reader, err := graft.Dep[ports.DumpReader](ctx)
	if err != nil {
		return nil, err
	}

	matcher, err := graft.Dep[*kmod.Matcher](ctx)
	if err != nil {
		return nil, err
	}

	resolver, err := graft.Dep[*libraries.Resolver](ctx)
	if err != nil {
		return nil, err
	}

	locator, err := graft.Dep[*debuginfo.Locator](ctx)
	if err != nil {
		return nil, err
	}

	assembler, err := graft.Dep[ports.Assembler](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
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

	return New(cls, reader, matcher, resolver, locator, assembler, tracer, paths, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{App: app, Logger: log}, nil
}
