package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/envkit/internal/adapters/logger"
	"go.trai.ch/envkit/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the executor Graft node.
	NodeID graft.ID = "adapter.executor"

	// RunnerNodeID is the unique identifier for the action runner Graft node.
	RunnerNodeID graft.ID = "adapter.action_runner"
)

func init() {
	graft.Register(graft.Node[ports.Executor]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Executor, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewExecutor(log), nil
		},
	})

	graft.Register(graft.Node[ports.ActionRunner]{
		ID:        RunnerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ActionRunner, error) {
			return NewRunner(), nil
		},
	})
}
