package registry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/envkit/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the concrete registry Graft node.
	NodeID graft.ID = "adapter.registry"

	// PortNodeID exposes the same registry as ports.ActionRegistry.
	PortNodeID graft.ID = "adapter.action_registry"
)

func init() {
	graft.Register(graft.Node[*Registry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Registry, error) {
			return New(), nil
		},
	})

	graft.Register(graft.Node[ports.ActionRegistry]{
		ID:        PortNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID},
		Run: func(ctx context.Context) (ports.ActionRegistry, error) {
			r, err := graft.Dep[*Registry](ctx)
			if err != nil {
				return nil, err
			}
			return r, nil
		},
	})
}
