// Package app implements the application layer for envkit.
package app

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/envkit/internal/adapters/conftest"
	"go.trai.ch/envkit/internal/adapters/detector"
	"go.trai.ch/envkit/internal/adapters/registry"
	"go.trai.ch/envkit/internal/core/domain"
	"go.trai.ch/envkit/internal/core/ports"
	"go.trai.ch/envkit/internal/engine/probe"
	"go.trai.ch/envkit/internal/engine/thirdparty"
	"go.trai.ch/envkit/internal/engine/tools"
	"go.trai.ch/zerr"
)

// App composes the engines behind the CLI.
type App struct {
	loader    ports.ConfigLoader
	boot      *thirdparty.Bootstrapper
	prober    *probe.Prober
	wrappers  *tools.Wrappers
	registry  *registry.Registry
	runner    ports.ActionRunner
	printer   ports.StatusPrinter
	paths     ports.PathProbe
	collector ports.FileCollector
	records   ports.BootstrapStore
	checks    *conftest.Factory
	logger    ports.Logger

	out          io.Writer
	detectPretty func() bool
}

// Deps holds the collaborators of an App.
type Deps struct {
	Loader    ports.ConfigLoader
	Boot      *thirdparty.Bootstrapper
	Prober    *probe.Prober
	Wrappers  *tools.Wrappers
	Registry  *registry.Registry
	Runner    ports.ActionRunner
	Printer   ports.StatusPrinter
	Paths     ports.PathProbe
	Collector ports.FileCollector
	Records   ports.BootstrapStore
	Checks    *conftest.Factory
	Logger    ports.Logger
}

// New creates a new App instance.
func New(d Deps) *App {
	return &App{
		loader:       d.Loader,
		boot:         d.Boot,
		prober:       d.Prober,
		wrappers:     d.Wrappers,
		registry:     d.Registry,
		runner:       d.Runner,
		printer:      d.Printer,
		paths:        d.Paths,
		collector:    d.Collector,
		records:      d.Records,
		checks:       d.Checks,
		logger:       d.Logger,
		out:          os.Stdout,
		detectPretty: detector.DetectPretty,
	}
}

// WithOutput sets the writer for check progress and action output.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// WithPrettyDetector overrides terminal detection for the auto output mode.
func (a *App) WithPrettyDetector(detect func() bool) *App {
	a.detectPretty = detect
	return a
}

// Environment builds the environment for the project containing cwd. Without
// an envkit.yaml the environment is rooted at cwd with default settings.
func (a *App) Environment(cwd string) (*domain.Environment, *domain.Config, error) {
	if _, err := a.loader.DiscoverRoot(cwd); err != nil {
		if !errors.Is(err, domain.ErrConfigNotFound) {
			return nil, nil, err
		}
		abs, absErr := filepath.Abs(cwd)
		if absErr != nil {
			return nil, nil, zerr.Wrap(absErr, "failed to resolve working directory")
		}
		cfg := &domain.Config{Root: abs, ModuleDir: domain.DefaultModuleDir, Pretty: domain.PrettyAuto}
		return a.newEnvironment(cfg), cfg, nil
	}

	cfg, err := a.loader.Load(cwd)
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to load configuration")
	}
	return a.newEnvironment(cfg), cfg, nil
}

func (a *App) newEnvironment(cfg *domain.Config) *domain.Environment {
	env := domain.NewEnvironment(cfg.Root)
	env.ModuleDir = cfg.ModuleDir
	env.Toolchain = cfg.Toolchain
	env.Pretty = detector.ResolvePretty(a.detectPretty(), cfg.Pretty)
	for k, v := range cfg.Vars {
		env.Set(k, v)
	}
	if cfg.Python != "" {
		env.Set(tools.PythonKey, cfg.Python)
	}
	return env
}

// BootstrapOptions controls a bootstrap run.
type BootstrapOptions struct {
	Toolchain string
	Includes  []string
	Pretty    domain.PrettyMode
}

// Bootstrap ensures each named dependency is built and returns the wired environment.
func (a *App) Bootstrap(ctx context.Context, cwd string, names []string, opts BootstrapOptions) (*domain.Environment, error) {
	if len(names) == 0 {
		return nil, domain.ErrNoDependencies
	}

	env, _, err := a.Environment(cwd)
	if err != nil {
		return nil, err
	}
	if opts.Toolchain != "" {
		env.Toolchain = opts.Toolchain
	}
	if opts.Pretty != "" && opts.Pretty != domain.PrettyAuto {
		env.Pretty = detector.ResolvePretty(env.Pretty, opts.Pretty)
	}

	deps := make([]domain.Dependency, 0, len(names))
	for _, name := range names {
		deps = append(deps, domain.Dependency{Name: name, Toolchain: env.Toolchain, Includes: opts.Includes})
	}
	if err := a.boot.EnsureAll(ctx, env, deps); err != nil {
		return nil, err
	}
	return env, nil
}

// Which lists every PATH entry holding prog.
func (a *App) Which(prog string) []string {
	return a.paths.Which(prog)
}

// Glob collects files under root matching patterns, minus exclusions.
func (a *App) Glob(root string, dirs, patterns, exclude []string) ([]string, error) {
	return a.collector.Collect(root, domain.Strings(dirs...), domain.Strings(patterns...), domain.Strings(exclude...))
}

// CompilerVersion probes the version of compiler.
func (a *App) CompilerVersion(ctx context.Context, compiler string) domain.Version {
	return a.prober.CompilerVersion(ctx, compiler)
}

// Check runs a capability probe against the environment of cwd.
func (a *App) Check(ctx context.Context, cwd string, check domain.Check) (bool, error) {
	env, _, err := a.Environment(cwd)
	if err != nil {
		return false, err
	}
	return a.check(ctx, env, check), nil
}

func (a *App) check(ctx context.Context, env *domain.Environment, check domain.Check) bool {
	cc := a.checks.New(env, a.out)
	return probe.CheckLibWithHeaderExpr(ctx, cc, check.Libs, check.Headers, check.Language, check.Expr)
}
