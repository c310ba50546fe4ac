package thirdparty

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/envkit/internal/adapters/cas"      //nolint:depguard // Wired in engine wiring
	"go.trai.ch/envkit/internal/adapters/detector" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/envkit/internal/adapters/fs"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/envkit/internal/adapters/logger"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/envkit/internal/adapters/shell"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/envkit/internal/adapters/status"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/envkit/internal/adapters/which"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/envkit/internal/core/ports"
)

// NodeID is the unique identifier for the bootstrapper Graft node.
const NodeID graft.ID = "engine.thirdparty"

func init() {
	graft.Register(graft.Node[*Bootstrapper]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.MarkerNodeID,
			fs.CollectorNodeID,
			cas.NodeID,
			shell.NodeID,
			which.NodeID,
			status.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Bootstrapper, error) {
			markers, err := graft.Dep[ports.MarkerStore](ctx)
			if err != nil {
				return nil, err
			}

			records, err := graft.Dep[ports.BootstrapStore](ctx)
			if err != nil {
				return nil, err
			}

			collector, err := graft.Dep[ports.FileCollector](ctx)
			if err != nil {
				return nil, err
			}

			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}

			probe, err := graft.Dep[ports.PathProbe](ctx)
			if err != nil {
				return nil, err
			}

			printer, err := graft.Dep[ports.StatusPrinter](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewBootstrapper(
				markers,
				records,
				collector,
				executor,
				probe,
				printer,
				log,
				WithTTY(detector.IsTerminal()),
			), nil
		},
	})
}
