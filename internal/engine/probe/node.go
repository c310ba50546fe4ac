package probe

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/envkit/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/envkit/internal/adapters/shell"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/envkit/internal/adapters/which"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/envkit/internal/core/ports"
)

// NodeID is the unique identifier for the prober Graft node.
const NodeID graft.ID = "engine.probe"

func init() {
	graft.Register(graft.Node[*Prober]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, which.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Prober, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}

			probe, err := graft.Dep[ports.PathProbe](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewProber(executor, probe, log), nil
		},
	})
}
