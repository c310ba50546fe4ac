package conftest

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/envkit/internal/adapters/logger"
	"go.trai.ch/envkit/internal/adapters/shell"
	"go.trai.ch/envkit/internal/core/ports"
)

// NodeID is the unique identifier for the check context factory Graft node.
const NodeID graft.ID = "adapter.conftest"

func init() {
	graft.Register(graft.Node[*Factory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Factory, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(executor, log), nil
		},
	})
}
