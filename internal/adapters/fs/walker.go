// Package fs provides file system adapters for pattern collection and completion markers.
package fs

import (
	"io/fs"
	"iter"
	"os"
	"path/filepath"
)

// Walker yields the files of a directory tree.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields every non-directory entry under root, top-down in lexical order.
// Symlinks to directories count as directories and are not followed.
// A missing or unreadable root yields nothing.
func (w *Walker) WalkFiles(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			if d.IsDir() || isDirLink(path, d) {
				return nil
			}
			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

func isDirLink(path string, d fs.DirEntry) bool {
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
