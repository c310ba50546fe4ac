// Package thirdparty bootstraps vendored dependencies and wires them into a build environment.
package thirdparty

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/envkit/internal/core/domain"
	"go.trai.ch/envkit/internal/core/ports"
	"go.trai.ch/envkit/internal/engine/tools"
	"go.trai.ch/zerr"
)

// Bootstrapper builds missing dependencies with the external builder script and
// adds their headers and libraries to an environment.
type Bootstrapper struct {
	markers   ports.MarkerStore
	records   ports.BootstrapStore
	collector ports.FileCollector
	executor  ports.Executor
	probe     ports.PathProbe
	printer   ports.StatusPrinter
	logger    ports.Logger

	stdout io.Writer
	stderr io.Writer
	tty    bool
	now    func() time.Time
}

// Option configures a Bootstrapper.
type Option func(*Bootstrapper)

// WithOutput sets where builder output streams in verbose mode.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(b *Bootstrapper) {
		b.stdout = stdout
		b.stderr = stderr
	}
}

// WithTTY runs the builder on a pseudo-terminal in verbose mode.
func WithTTY(tty bool) Option {
	return func(b *Bootstrapper) {
		b.tty = tty
	}
}

// WithClock overrides the time source used for bootstrap records.
func WithClock(now func() time.Time) Option {
	return func(b *Bootstrapper) {
		b.now = now
	}
}

// NewBootstrapper creates a new Bootstrapper.
func NewBootstrapper(
	markers ports.MarkerStore,
	records ports.BootstrapStore,
	collector ports.FileCollector,
	executor ports.Executor,
	probe ports.PathProbe,
	printer ports.StatusPrinter,
	logger ports.Logger,
	opts ...Option,
) *Bootstrapper {
	b := &Bootstrapper{
		markers:   markers,
		records:   records,
		collector: collector,
		executor:  executor,
		probe:     probe,
		printer:   printer,
		logger:    logger,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Ensure builds dep unless its completion marker exists, then prepends its
// include directories to the header search path and appends its libraries.
// A failed build returns a *domain.FatalError and leaves env untouched.
func (b *Bootstrapper) Ensure(ctx context.Context, env *domain.Environment, dep domain.Dependency) error {
	if dep.Toolchain == "" {
		dep.Toolchain = env.Toolchain
	}
	if err := dep.Validate(); err != nil {
		return err
	}

	state, err := b.markers.State(env.Root, dep.Name)
	if err != nil {
		return err
	}

	if state == domain.Unbuilt {
		if err := b.build(ctx, env, dep); err != nil {
			return err
		}
	}

	return b.wire(env, dep)
}

// EnsureAll bootstraps deps in order, stopping at the first error.
func (b *Bootstrapper) EnsureAll(ctx context.Context, env *domain.Environment, deps []domain.Dependency) error {
	for _, dep := range deps {
		if err := b.Ensure(ctx, env, dep); err != nil {
			return err
		}
	}
	return nil
}

func (b *Bootstrapper) build(ctx context.Context, env *domain.Environment, dep domain.Dependency) error {
	python, err := tools.Python(env, b.probe)
	if err != nil {
		return err
	}

	b.printer.Print("MAKE", dep.Name, "yellow")

	cmd := domain.Command{
		Args: []string{python, domain.BuilderScript, domain.ThirdPartyDirName, dep.Toolchain, dep.Name},
		Dir:  env.Root,
	}

	start := b.now()
	if err := b.run(ctx, env, cmd); err != nil {
		return domain.DieWith(
			zerr.With(zerr.Wrap(err, domain.ErrBuildStepFailed.Error()), "dependency", dep.Name),
			"can't make `%s', see `%s' for details", dep.Name, domain.BuildLogFile,
		)
	}

	rec := domain.BootstrapRecord{
		Name:      dep.Name,
		Toolchain: dep.Toolchain,
		Duration:  b.now().Sub(start),
		Timestamp: start,
	}
	if err := b.records.Put(env.Root, rec); err != nil {
		b.logger.Warn(zerr.With(err, "dependency", dep.Name).Error())
	}
	return nil
}

func (b *Bootstrapper) run(ctx context.Context, env *domain.Environment, cmd domain.Command) error {
	if !env.Pretty {
		cmd.TTY = b.tty
		return b.executor.Execute(ctx, cmd, b.stdout, b.stderr)
	}

	//nolint:gosec // build.log lives at the project root
	f, err := os.Create(filepath.Join(env.Root, domain.BuildLogFile))
	if err != nil {
		return zerr.Wrap(err, domain.ErrBuildLogCreateFailed.Error())
	}
	defer func() { _ = f.Close() }()

	return b.executor.Execute(ctx, cmd, f, f)
}

func (b *Bootstrapper) wire(env *domain.Environment, dep domain.Dependency) error {
	for _, sub := range dep.IncludeSubdirs() {
		env.PrependCPPPath(domain.IncludePath(dep.Name, sub))
	}

	libs, err := b.collector.Collect(env.Root, []string{domain.LibPath(dep.Name)}, []string{domain.LibPattern}, nil)
	if err != nil {
		return zerr.With(err, "dependency", dep.Name)
	}
	env.AppendLibs(libs...)
	return nil
}
