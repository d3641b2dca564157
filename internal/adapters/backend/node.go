package backend

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/debugdump/internal/core/ports"
)

// NodeID is the unique identifier for the backend opener Graft node.
const NodeID graft.ID = "adapter.backend"

func init() {
	graft.Register(graft.Node[ports.BackendOpener]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.BackendOpener, error) {
			return NewOpener(), nil
		},
	})
}
