package tools

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/envkit/internal/adapters/registry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/envkit/internal/adapters/which"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/envkit/internal/core/ports"
)

// NodeID is the unique identifier for the tool wrappers Graft node.
const NodeID graft.ID = "engine.tools"

func init() {
	graft.Register(graft.Node[*Wrappers]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{which.NodeID, registry.PortNodeID},
		Run: func(ctx context.Context) (*Wrappers, error) {
			probe, err := graft.Dep[ports.PathProbe](ctx)
			if err != nil {
				return nil, err
			}

			reg, err := graft.Dep[ports.ActionRegistry](ctx)
			if err != nil {
				return nil, err
			}

			return NewWrappers(probe, reg), nil
		},
	})
}
