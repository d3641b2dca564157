package reconcile

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/debugdump/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/debugdump/internal/core/ports"
)

// NodeID is the unique identifier for the reconcile engine Graft node.
const NodeID graft.ID = "engine.reconcile"

func init() {
	graft.Register(graft.Node[*Engine]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{telemetry.TracerNodeID},
		Run: func(ctx context.Context) (*Engine, error) {
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			return NewEngine(tracer), nil
		},
	})
}
