package status

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/envkit/internal/core/ports"
)

// NodeID is the unique identifier for the status printer Graft node.
const NodeID graft.ID = "adapter.status_printer"

func init() {
	graft.Register(graft.Node[ports.StatusPrinter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.StatusPrinter, error) {
			return NewPrinter(nil), nil
		},
	})
}
