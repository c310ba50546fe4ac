package app

import (
	"context"

	"go.trai.ch/envkit/internal/core/domain"
	"go.trai.ch/envkit/internal/engine/tools"
	"go.trai.ch/zerr"
)

// ApplyOptions controls an apply run.
type ApplyOptions struct {
	// Exec runs the registered actions after configuration.
	Exec bool
}

// CheckResult is the outcome of one configured capability check.
type CheckResult struct {
	Check domain.Check
	OK    bool
}

// ApplyResult is the configured environment and everything registered on it.
type ApplyResult struct {
	Env        *domain.Environment
	Checks     []CheckResult
	DocsTarget string
	Objects    []domain.ObjectRef
	ClangDB    string
	Actions    []domain.Action
}

// Apply loads envkit.yaml, bootstraps dependencies, merges pkg-config flags,
// runs checks and registers the configured tool actions.
func (a *App) Apply(ctx context.Context, cwd string, opts ApplyOptions) (*ApplyResult, error) {
	env, cfg, err := a.loadEnvironment(cwd)
	if err != nil {
		return nil, err
	}

	if err := a.boot.EnsureAll(ctx, env, cfg.ThirdParty); err != nil {
		return nil, err
	}

	for _, args := range cfg.PkgConfig {
		a.prober.TryParseConfig(ctx, env, args)
	}

	res := &ApplyResult{Env: env}
	for _, check := range cfg.Checks {
		res.Checks = append(res.Checks, CheckResult{Check: check, OK: a.check(ctx, env, check)})
	}

	if cfg.Docs != nil {
		if res.DocsTarget, err = a.wrappers.Doxygen(env, cfg.Docs.Output, cfg.Docs.Sources); err != nil {
			return nil, err
		}
	}

	for _, spec := range cfg.GenGetOpt {
		objs, err := a.wrappers.GenGetOpt(env, spec.Source, spec.Version)
		if err != nil {
			return nil, err
		}
		res.Objects = append(res.Objects, objs...)
	}

	if cfg.ClangDB != nil {
		if res.ClangDB, err = a.wrappers.ClangDB(env, cfg.ClangDB.BuildDir, cfg.ClangDB.Pattern, cfg.ClangDB.Compiler); err != nil {
			return nil, err
		}
	}

	res.Actions = a.registry.Actions()

	if opts.Exec {
		if err := a.registry.Run(ctx, env.Root, a.runner, a.printer, a.out, a.out); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// Clean removes bootstrap records and, with all set, the dependency tree and build log.
func (a *App) Clean(ctx context.Context, cwd string, all bool) error {
	env, _, err := a.Environment(cwd)
	if err != nil {
		return err
	}

	if err := a.records.Clear(env.Root); err != nil {
		return err
	}
	if !all {
		return nil
	}

	for _, path := range []string{domain.ThirdPartyDirName, domain.BuildLogFile} {
		action := tools.DeleteDir(env, path)
		a.printer.Print(action.Tag, action.Subject, action.Color)
		if err := action.Func(ctx); err != nil {
			return err
		}
	}
	return nil
}

// loadEnvironment is Environment without the fallback: envkit.yaml must exist.
func (a *App) loadEnvironment(cwd string) (*domain.Environment, *domain.Config, error) {
	cfg, err := a.loader.Load(cwd)
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to load configuration")
	}
	return a.newEnvironment(cfg), cfg, nil
}
