package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/envkit/internal/core/ports"
)

const (
	// WalkerNodeID is the unique identifier for the walker Graft node.
	WalkerNodeID graft.ID = "adapter.fs.walker"
	// CollectorNodeID is the unique identifier for the file collector Graft node.
	CollectorNodeID graft.ID = "adapter.fs.collector"
	// MarkerNodeID is the unique identifier for the marker store Graft node.
	MarkerNodeID graft.ID = "adapter.fs.marker"
)

func init() {
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.FileCollector]{
		ID:        CollectorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID},
		Run: func(ctx context.Context) (ports.FileCollector, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewCollector(walker), nil
		},
	})

	graft.Register(graft.Node[ports.MarkerStore]{
		ID:        MarkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.MarkerStore, error) {
			return NewMarkerStore(), nil
		},
	})
}
