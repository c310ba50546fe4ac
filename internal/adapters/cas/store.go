// Package cas stores bootstrap records, one JSON file per dependency.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/envkit/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.BootstrapStore using a file-per-dependency strategy.
// Records are informational; the completion marker decides whether a dependency is built.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Get retrieves the record for a dependency, or nil if none was stored.
func (s *Store) Get(root, name string) (*domain.BootstrapRecord, error) {
	filename := s.filename(root, name)
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
	}

	var rec domain.BootstrapRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error())
	}

	return &rec, nil
}

// Put stores the record, replacing any previous one for the same dependency.
func (s *Store) Put(root string, rec domain.BootstrapRecord) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	filename := s.filename(root, rec.Name)
	if err := os.MkdirAll(filepath.Dir(filename), domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreCreateFailed.Error())
	}

	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	if err := os.WriteFile(filename, data, domain.FilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}

	return nil
}

// Clear removes every record under root.
func (s *Store) Clear(root string) error {
	dir := filepath.Join(root, domain.DefaultStorePath())
	if err := os.RemoveAll(dir); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCleanFailed.Error()), "path", dir)
	}
	return nil
}

func (s *Store) filename(root, name string) string {
	sum := strconv.FormatUint(xxhash.Sum64String(name), 16)
	return filepath.Join(root, domain.DefaultStorePath(), sum+".json")
}
