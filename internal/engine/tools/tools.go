// Package tools registers external code-generation and documentation tools as build actions.
package tools

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/envkit/internal/core/domain"
	"go.trai.ch/envkit/internal/core/ports"
	"go.trai.ch/zerr"
	"mvdan.cc/sh/v3/syntax"
)

const (
	// DoxygenKey overrides the doxygen binary.
	DoxygenKey = "DOXYGEN"
	// GenGetOptKey overrides the gengetopt binary.
	GenGetOptKey = "GENGETOPT"
)

// Wrappers turns tool invocations into declarative actions.
type Wrappers struct {
	probe    ports.PathProbe
	registry ports.ActionRegistry
}

// NewWrappers creates a new Wrappers.
func NewWrappers(probe ports.PathProbe, registry ports.ActionRegistry) *Wrappers {
	return &Wrappers{probe: probe, registry: registry}
}

// Doxygen registers documentation generation for sources into outputDir and
// returns the marker target the action produces.
func (w *Wrappers) Doxygen(env *domain.Environment, outputDir string, sources []string) (string, error) {
	doxygen, err := w.require(env, DoxygenKey, "doxygen")
	if err != nil {
		return "", err
	}
	python, err := Python(env, w.probe)
	if err != nil {
		return "", err
	}

	target := filepath.Join(outputDir, domain.DocsMarkerName)
	action := domain.Action{
		Targets: []string{target},
		Sources: sources,
		Command: join(
			python,
			w.script(env, "doxygen.py"),
			env.Root,
			outputDir,
			target,
			doxygen,
		),
		Tag:     "DOXYGEN",
		Subject: outputDir,
		Color:   "purple",
	}
	if err := w.registry.Register(action); err != nil {
		return "", err
	}
	return target, nil
}

// GenGetOpt registers generation of a command-line parser from a .ggo source.
// The generated .c and .h land next to the source; the .c is returned for compilation.
func (w *Wrappers) GenGetOpt(env *domain.Environment, source, version string) ([]domain.ObjectRef, error) {
	gengetopt, err := w.require(env, GenGetOptKey, "gengetopt")
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(source)
	base := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	cfile := filepath.Join(dir, base+".c")
	hfile := filepath.Join(dir, base+".h")

	action := domain.Action{
		Targets: []string{cfile, hfile},
		Sources: []string{source},
		Command: join(gengetopt, "-F", base) +
			" --output-dir=" + quote(dir) +
			" --set-version=" + quote(version) +
			" < " + quote(source),
		Tag:     "GGO",
		Subject: source,
		Color:   "purple",
	}
	if err := w.registry.Register(action); err != nil {
		return nil, err
	}
	return []domain.ObjectRef{{Source: cfile}}, nil
}

// ClangDB returns the command that writes a compilation database for the
// objects under buildDir matching pattern.
func (w *Wrappers) ClangDB(env *domain.Environment, buildDir, pattern, compiler string) (string, error) {
	python, err := Python(env, w.probe)
	if err != nil {
		return "", err
	}
	return join(python, w.script(env, "clangdb.py"), env.Root, buildDir) +
		` "` + pattern + `" ` + quote(compiler), nil
}

// DeleteDir returns an action removing path if it exists.
func DeleteDir(env *domain.Environment, path string) domain.Action {
	abs := path
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(env.Root, path)
	}
	return domain.Action{
		Tag:     "RM",
		Subject: path,
		Color:   "red",
		Func: func(context.Context) error {
			if err := os.RemoveAll(abs); err != nil {
				return zerr.With(zerr.Wrap(err, domain.ErrCleanFailed.Error()), "path", path)
			}
			return nil
		},
	}
}

// require resolves a tool binary from key or def and fails fatally when it is not on PATH.
func (w *Wrappers) require(env *domain.Environment, key, def string) (string, error) {
	bin := env.Get(key, def)
	if len(w.probe.Which(bin)) == 0 {
		return "", domain.DieWith(
			zerr.With(domain.ErrToolMissing, "tool", bin),
			"%s not found in PATH (looked for `%s')", def, bin,
		)
	}
	return bin, nil
}

func (w *Wrappers) script(env *domain.Environment, name string) string {
	moduleDir := env.ModuleDir
	if moduleDir == "" {
		moduleDir = domain.DefaultModuleDir
	}
	return filepath.Join(moduleDir, domain.WrappersDirName, name)
}

func join(words ...string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = quote(w)
	}
	return strings.Join(quoted, " ")
}

func quote(s string) string {
	q, err := syntax.Quote(s, syntax.LangBash)
	if err != nil {
		return s
	}
	return q
}
