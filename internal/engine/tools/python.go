package tools

import (
	"path/filepath"

	"go.trai.ch/envkit/internal/core/domain"
	"go.trai.ch/envkit/internal/core/ports"
	"go.trai.ch/zerr"
)

// PythonKey overrides interpreter resolution.
const PythonKey = "PYTHON"

var pythonCandidates = []string{"python3", "python"}

// Python resolves the interpreter used to run helper scripts. An explicit
// PYTHON setting wins; otherwise the first candidate found on PATH is used by
// its base name.
func Python(env *domain.Environment, probe ports.PathProbe) (string, error) {
	if python, ok := env.Lookup(PythonKey); ok {
		return python, nil
	}
	for _, name := range pythonCandidates {
		if found := probe.Which(name); len(found) > 0 {
			return filepath.Base(found[0]), nil
		}
	}
	return "", domain.DieWith(
		zerr.With(domain.ErrToolMissing, "tool", pythonCandidates[0]),
		"python not found in PATH (looked for `%s')", pythonCandidates[0],
	)
}
