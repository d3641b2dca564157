package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/debugdump/internal/adapters/backend"   //nolint:depguard // Wired in app layer
	"go.trai.ch/debugdump/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/debugdump/internal/adapters/hasher"    //nolint:depguard // Wired in app layer
	"go.trai.ch/debugdump/internal/adapters/linear"    //nolint:depguard // Wired in app layer
	"go.trai.ch/debugdump/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/debugdump/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/debugdump/internal/core/ports"
	"go.trai.ch/debugdump/internal/engine/reconcile"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			backend.NodeID,
			hasher.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
			reconcile.NodeID,
			linear.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(app, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	opener, err := graft.Dep[ports.BackendOpener](ctx)
	if err != nil {
		return nil, err
	}

	h, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	engine, err := graft.Dep[*reconcile.Engine](ctx)
	if err != nil {
		return nil, err
	}

	renderer, err := graft.Dep[ports.PlanRenderer](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, opener, h, log, tracer, engine, renderer), nil
}
