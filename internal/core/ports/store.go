package ports

import "go.trai.ch/envkit/internal/core/domain"

// BootstrapStore keeps informational records of successful dependency builds.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type BootstrapStore interface {
	// Get retrieves the record for a dependency.
	// Returns nil, nil if not found.
	Get(root, name string) (*domain.BootstrapRecord, error)

	// Put stores the record.
	Put(root string, rec domain.BootstrapRecord) error

	// Clear removes every record under root.
	Clear(root string) error
}

// MarkerStore reports the bootstrap state of a dependency from its completion marker.
type MarkerStore interface {
	// State returns Built when 3rdparty/<name>.done exists under root.
	State(root, name string) (domain.DependencyState, error)
}
