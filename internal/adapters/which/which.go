// Package which locates executables on the search path.
package which

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Probe implements ports.PathProbe.
type Probe struct {
	getenv func(string) (string, bool)
}

// New creates a Probe reading PATH and PATHEXT from the process environment.
func New() *Probe {
	return &Probe{getenv: os.LookupEnv}
}

// NewWithEnv creates a Probe reading PATH and PATHEXT through getenv.
func NewWithEnv(getenv func(string) (string, bool)) *Probe {
	return &Probe{getenv: getenv}
}

// Which returns every candidate path for prog in PATH order, testing prog
// itself and then prog with each PATHEXT suffix in every directory.
func (p *Probe) Which(prog string) []string {
	path, ok := p.getenv("PATH")
	if !ok {
		return []string{}
	}

	var exts []string
	if pathext, ok := p.getenv("PATHEXT"); ok {
		for _, e := range strings.Split(pathext, string(os.PathListSeparator)) {
			if e != "" {
				exts = append(exts, e)
			}
		}
	}

	result := []string{}
	for _, dir := range filepath.SplitList(path) {
		candidate := filepath.Join(dir, prog)
		if isExecutable(candidate) {
			result = append(result, candidate)
		}
		for _, ext := range exts {
			if isExecutable(candidate + ext) {
				result = append(result, candidate+ext)
			}
		}
	}
	return result
}

func isExecutable(file string) bool {
	info, err := os.Stat(file)
	if err != nil {
		return false
	}
	m := info.Mode()
	if m.IsDir() {
		return false
	}
	if runtime.GOOS == "windows" {
		return true
	}
	return m&0o111 != 0
}
