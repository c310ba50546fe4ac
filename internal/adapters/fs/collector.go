package fs

import (
	"path/filepath"

	"github.com/gobwas/glob"
	"go.trai.ch/envkit/internal/core/domain"
	"go.trai.ch/zerr"
)

// Collector implements ports.FileCollector with fnmatch-style patterns:
// '*' and '?' also match '/', as they do for shell filename matching.
type Collector struct {
	walker *Walker
}

// NewCollector creates a new Collector.
func NewCollector(walker *Walker) *Collector {
	return &Collector{walker: walker}
}

// Collect returns the files under dirs whose base name matches one of patterns,
// as paths relative to root. Relative dirs are resolved against root.
//
// Results are grouped by pattern, then by dir, then in walk order.
// A file matched by several patterns is listed once per pattern.
func (c *Collector) Collect(root string, dirs, patterns, exclude []string) ([]string, error) {
	includes, err := compileAll(patterns)
	if err != nil {
		return nil, err
	}
	excludes, err := compileAll(exclude)
	if err != nil {
		return nil, err
	}

	var matches []string
	for _, include := range includes {
		for _, dir := range dirs {
			if !filepath.IsAbs(dir) {
				dir = filepath.Join(root, dir)
			}
			for path := range c.walker.WalkFiles(dir) {
				if !include.Match(filepath.Base(path)) {
					continue
				}
				rel, err := filepath.Rel(root, path)
				if err != nil {
					return nil, zerr.With(zerr.Wrap(err, domain.ErrWalkFailed.Error()), "path", path)
				}
				if excluded(excludes, rel) {
					continue
				}
				matches = append(matches, rel)
			}
		}
	}
	return matches, nil
}

func excluded(excludes []glob.Glob, rel string) bool {
	base := filepath.Base(rel)
	slashed := filepath.ToSlash(rel)
	for _, ex := range excludes {
		if ex.Match(rel) || ex.Match(slashed) || ex.Match(base) {
			return true
		}
	}
	return false
}

func compileAll(patterns []string) ([]glob.Glob, error) {
	out := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrInvalidPattern.Error()), "pattern", p)
		}
		out = append(out, g)
	}
	return out, nil
}
