package linear

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/debugdump/internal/core/ports"
)

// NodeID is the unique identifier for the linear renderer Graft node.
const NodeID graft.ID = "adapter.linear"

func init() {
	graft.Register(graft.Node[ports.PlanRenderer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PlanRenderer, error) {
			return NewRenderer(nil), nil
		},
	})
}
