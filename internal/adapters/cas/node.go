package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/envkit/internal/core/ports"
)

// NodeID is the unique identifier for the bootstrap record store Graft node.
const NodeID graft.ID = "adapter.bootstrap_store"

func init() {
	graft.Register(graft.Node[ports.BootstrapStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.BootstrapStore, error) {
			return NewStore(), nil
		},
	})
}
