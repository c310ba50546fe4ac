package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/envkit/internal/adapters/cas"      //nolint:depguard // Wired in app layer
	"go.trai.ch/envkit/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/envkit/internal/adapters/conftest" //nolint:depguard // Wired in app layer
	"go.trai.ch/envkit/internal/adapters/fs"       //nolint:depguard // Wired in app layer
	"go.trai.ch/envkit/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/envkit/internal/adapters/registry" //nolint:depguard // Wired in app layer
	"go.trai.ch/envkit/internal/adapters/shell"    //nolint:depguard // Wired in app layer
	"go.trai.ch/envkit/internal/adapters/status"   //nolint:depguard // Wired in app layer
	"go.trai.ch/envkit/internal/adapters/which"    //nolint:depguard // Wired in app layer
	"go.trai.ch/envkit/internal/core/ports"
	"go.trai.ch/envkit/internal/engine/probe"
	"go.trai.ch/envkit/internal/engine/thirdparty"
	"go.trai.ch/envkit/internal/engine/tools"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			thirdparty.NodeID,
			probe.NodeID,
			tools.NodeID,
			registry.NodeID,
			shell.RunnerNodeID,
			status.NodeID,
			which.NodeID,
			fs.CollectorNodeID,
			cas.NodeID,
			conftest.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: a, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	var (
		d   Deps
		err error
	)

	if d.Loader, err = graft.Dep[ports.ConfigLoader](ctx); err != nil {
		return nil, err
	}
	if d.Boot, err = graft.Dep[*thirdparty.Bootstrapper](ctx); err != nil {
		return nil, err
	}
	if d.Prober, err = graft.Dep[*probe.Prober](ctx); err != nil {
		return nil, err
	}
	if d.Wrappers, err = graft.Dep[*tools.Wrappers](ctx); err != nil {
		return nil, err
	}
	if d.Registry, err = graft.Dep[*registry.Registry](ctx); err != nil {
		return nil, err
	}
	if d.Runner, err = graft.Dep[ports.ActionRunner](ctx); err != nil {
		return nil, err
	}
	if d.Printer, err = graft.Dep[ports.StatusPrinter](ctx); err != nil {
		return nil, err
	}
	if d.Paths, err = graft.Dep[ports.PathProbe](ctx); err != nil {
		return nil, err
	}
	if d.Collector, err = graft.Dep[ports.FileCollector](ctx); err != nil {
		return nil, err
	}
	if d.Records, err = graft.Dep[ports.BootstrapStore](ctx); err != nil {
		return nil, err
	}
	if d.Checks, err = graft.Dep[*conftest.Factory](ctx); err != nil {
		return nil, err
	}
	if d.Logger, err = graft.Dep[ports.Logger](ctx); err != nil {
		return nil, err
	}

	return New(d), nil
}
