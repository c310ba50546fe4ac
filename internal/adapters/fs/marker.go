package fs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/envkit/internal/core/domain"
	"go.trai.ch/zerr"
)

// MarkerStore implements ports.MarkerStore. The marker's content and the
// dependency tree behind it are never inspected.
type MarkerStore struct{}

// NewMarkerStore creates a new MarkerStore.
func NewMarkerStore() *MarkerStore {
	return &MarkerStore{}
}

// State reports Built when 3rdparty/<name>.done exists under root.
func (m *MarkerStore) State(root, name string) (domain.DependencyState, error) {
	path := filepath.Join(root, domain.MarkerPath(name))
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.Unbuilt, nil
		}
		return domain.Unbuilt, zerr.With(zerr.Wrap(err, domain.ErrMarkerStatFailed.Error()), "path", path)
	}
	return domain.Built, nil
}
