package app_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/envkit/internal/adapters/cas"
	"go.trai.ch/envkit/internal/adapters/config"
	"go.trai.ch/envkit/internal/adapters/conftest"
	"go.trai.ch/envkit/internal/adapters/fs"
	"go.trai.ch/envkit/internal/adapters/registry"
	"go.trai.ch/envkit/internal/adapters/shell"
	"go.trai.ch/envkit/internal/adapters/status"
	"go.trai.ch/envkit/internal/adapters/which"
	"go.trai.ch/envkit/internal/app"
	"go.trai.ch/envkit/internal/core/domain"
	"go.trai.ch/envkit/internal/core/ports/mocks"
	"go.trai.ch/envkit/internal/engine/probe"
	"go.trai.ch/envkit/internal/engine/thirdparty"
	"go.trai.ch/envkit/internal/engine/tools"
	"go.uber.org/mock/gomock"
)

type harness struct {
	app      *app.App
	executor *mocks.MockExecutor
	logger   *mocks.MockLogger
	out      *bytes.Buffer
	status   *bytes.Buffer
}

// newHarness wires real adapters around a mocked executor. PATH resolves to binDir.
func newHarness(t *testing.T, binDir string) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)
	h := &harness{
		executor: mocks.NewMockExecutor(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
		out:      &bytes.Buffer{},
		status:   &bytes.Buffer{},
	}
	t.Setenv("NO_COLOR", "1")

	paths := which.NewWithEnv(func(key string) (string, bool) {
		if key == "PATH" {
			return binDir, true
		}
		return "", false
	})
	collector := fs.NewCollector(fs.NewWalker())
	printer := status.NewPrinter(h.status)
	records := cas.NewStore()
	reg := registry.New()

	boot := thirdparty.NewBootstrapper(
		fs.NewMarkerStore(), records, collector, h.executor, paths, printer, h.logger,
		thirdparty.WithOutput(io.Discard, io.Discard),
	)

	h.app = app.New(app.Deps{
		Loader:    config.NewLoader(h.logger),
		Boot:      boot,
		Prober:    probe.NewProber(h.executor, paths, h.logger),
		Wrappers:  tools.NewWrappers(paths, reg),
		Registry:  reg,
		Runner:    shell.NewRunner(),
		Printer:   printer,
		Paths:     paths,
		Collector: collector,
		Records:   records,
		Checks:    conftest.NewFactory(h.executor, h.logger),
		Logger:    h.logger,
	}).WithOutput(h.out).WithPrettyDetector(func() bool { return false })
	return h
}

func writeFile(t *testing.T, path, content string, perm os.FileMode) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(t, os.WriteFile(path, []byte(content), perm))
}

func fakeTools(t *testing.T, names ...string) string {
	t.Helper()
	bin := t.TempDir()
	for _, name := range names {
		writeFile(t, filepath.Join(bin, name), "#!/bin/sh\n", 0o755)
	}
	return bin
}

func TestEnvironment_WithoutConfig(t *testing.T) {
	h := newHarness(t, "")
	dir := t.TempDir()

	env, cfg, err := h.app.Environment(dir)
	require.NoError(t, err)

	assert.Equal(t, dir, env.Root)
	assert.Equal(t, domain.DefaultModuleDir, env.ModuleDir)
	assert.Equal(t, domain.PrettyAuto, cfg.Pretty)
	assert.False(t, env.Pretty)
}

func TestEnvironment_FromConfig(t *testing.T) {
	h := newHarness(t, "")
	root := t.TempDir()
	writeFile(t, filepath.Join(root, domain.ConfigFileName), `version: "1"
toolchain: x86_64-linux-gnu
python: python3.12
pretty: "true"
vars:
  DOXYGEN: doxygen-1.9
`, domain.FilePerm)
	sub := filepath.Join(root, "src", "lib")
	require.NoError(t, os.MkdirAll(sub, domain.DirPerm))

	env, _, err := h.app.Environment(sub)
	require.NoError(t, err)

	assert.Equal(t, root, env.Root)
	assert.Equal(t, "x86_64-linux-gnu", env.Toolchain)
	assert.True(t, env.Pretty)
	assert.Equal(t, "python3.12", env.Get(tools.PythonKey, ""))
	assert.Equal(t, "doxygen-1.9", env.Get(tools.DoxygenKey, ""))
}

func TestBootstrap_NoNames(t *testing.T) {
	h := newHarness(t, "")

	_, err := h.app.Bootstrap(context.Background(), t.TempDir(), nil, app.BootstrapOptions{})
	require.ErrorIs(t, err, domain.ErrNoDependencies)
}

func TestBootstrap_Prebuilt(t *testing.T) {
	h := newHarness(t, "")
	root := t.TempDir()
	writeFile(t, filepath.Join(root, domain.MarkerPath("uv")), "", domain.FilePerm)
	writeFile(t, filepath.Join(root, domain.LibPath("uv"), "libuv.a"), "", domain.FilePerm)

	env, err := h.app.Bootstrap(context.Background(), root, []string{"uv"}, app.BootstrapOptions{
		Toolchain: "gcc",
		Includes:  []string{"uv"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join("3rdparty", "uv", "include", "uv")}, env.CPPPath)
	assert.Equal(t, []string{filepath.Join("3rdparty", "uv", "lib", "libuv.a")}, env.Libs)
	assert.Empty(t, h.status.String())
}

func TestGlob(t *testing.T) {
	h := newHarness(t, "")
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "src", "a.cpp"), "", domain.FilePerm)
	writeFile(t, filepath.Join(root, "src", "a_test.cpp"), "", domain.FilePerm)
	writeFile(t, filepath.Join(root, "src", "b.h"), "", domain.FilePerm)

	got, err := h.app.Glob(root, []string{"src"}, []string{"*.cpp", ""}, []string{"*test*"})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join("src", "a.cpp")}, got)
}

func TestApply(t *testing.T) {
	bin := fakeTools(t, "doxygen", "gengetopt", "pkg-config")
	h := newHarness(t, bin)
	root := t.TempDir()

	writeFile(t, filepath.Join(root, domain.ConfigFileName), `version: "1"
toolchain: gcc
python: python3
thirdparty:
  - name: openssl
pkgconfig:
  - --libs libpulse
checks:
  - libs: [uv]
    headers: [uv.h]
    expr: UV_VERSION_MAJOR >= 1
docs:
  output: build/docs
  sources: [src]
gengetopt:
  - source: src/tools/cmdline.ggo
    version: "0.1"
clangdb:
  build_dir: build
  compiler: clang
`, domain.FilePerm)
	writeFile(t, filepath.Join(root, domain.MarkerPath("openssl")), "", domain.FilePerm)
	writeFile(t, filepath.Join(root, domain.LibPath("openssl"), "libssl.a"), "", domain.FilePerm)

	// pkg-config, then the check compile and run.
	h.executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cmd domain.Command, stdout, _ io.Writer) error {
			assert.Equal(t, []string{"pkg-config", "--libs", "libpulse"}, cmd.Args)
			_, _ = io.WriteString(stdout, "-lpulse\n")
			return nil
		})
	h.executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	h.executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.Command, stdout, _ io.Writer) error {
			_, _ = io.WriteString(stdout, "1\n")
			return nil
		})

	res, err := h.app.Apply(context.Background(), root, app.ApplyOptions{})
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join("3rdparty", "openssl", "lib", "libssl.a"), "pulse"}, res.Env.Libs)
	assert.Equal(t, []string{filepath.Join("3rdparty", "openssl", "include")}, res.Env.CPPPath)
	require.Len(t, res.Checks, 1)
	assert.True(t, res.Checks[0].OK)
	assert.Equal(t, "Checking for C library uv... yes\n", h.out.String())

	assert.Equal(t, "build/docs/.done", res.DocsTarget)
	assert.Equal(t, []domain.ObjectRef{{Source: "src/tools/cmdline.c"}}, res.Objects)
	assert.Equal(t, `python3 scripts/wrappers/clangdb.py `+root+` build "*.o" clang`, res.ClangDB)

	require.Len(t, res.Actions, 2)
	assert.Equal(t, "DOXYGEN", res.Actions[0].Tag)
	assert.Equal(t, "GGO", res.Actions[1].Tag)
}

func TestEnvironment_DiscoveryErrorSurfaces(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().DiscoverRoot("proj").Return("", errors.New("permission denied"))

	a := app.New(app.Deps{Loader: loader}).WithPrettyDetector(func() bool { return false })

	_, _, err := a.Environment("proj")
	assert.EqualError(t, err, "permission denied")
}

func TestApply_PkgConfigFailureWarnsOnce(t *testing.T) {
	bin := fakeTools(t, "pkg-config")
	h := newHarness(t, bin)
	root := t.TempDir()
	writeFile(t, filepath.Join(root, domain.ConfigFileName), `toolchain: gcc
pkgconfig:
  - --cflags --libs libmissing
`, domain.FilePerm)

	h.executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("exit status 1"))
	h.logger.EXPECT().Warn(gomock.Any()).Times(1)

	res, err := h.app.Apply(context.Background(), root, app.ApplyOptions{})
	require.NoError(t, err)
	assert.Empty(t, res.Env.CFlags)
}

func TestApply_RequiresConfig(t *testing.T) {
	h := newHarness(t, "")

	_, err := h.app.Apply(context.Background(), t.TempDir(), app.ApplyOptions{})
	assert.ErrorContains(t, err, domain.ErrConfigNotFound.Error())
}

func TestApply_Exec(t *testing.T) {
	bin := fakeTools(t, "gengetopt")
	h := newHarness(t, bin)
	root := t.TempDir()
	writeFile(t, filepath.Join(root, domain.ConfigFileName), `toolchain: gcc
vars:
  GENGETOPT: gengetopt
gengetopt:
  - source: cmdline.ggo
    version: "2.0"
`, domain.FilePerm)

	_, err := h.app.Apply(context.Background(), root, app.ApplyOptions{Exec: true})

	// The fake gengetopt is not on the runner's PATH, so the action fails.
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrBuildStepFailed.Error())
	assert.Equal(t, "[ GGO ] cmdline.ggo\n", h.status.String())
}

func TestClean(t *testing.T) {
	h := newHarness(t, "")
	root := t.TempDir()
	writeFile(t, filepath.Join(root, domain.MarkerPath("uv")), "", domain.FilePerm)
	writeFile(t, filepath.Join(root, domain.BuildLogFile), "log", domain.FilePerm)
	require.NoError(t, cas.NewStore().Put(root, domain.BootstrapRecord{Name: "uv"}))

	require.NoError(t, h.app.Clean(context.Background(), root, false))
	assert.NoDirExists(t, filepath.Join(root, domain.DefaultStorePath()))
	assert.FileExists(t, filepath.Join(root, domain.MarkerPath("uv")))

	require.NoError(t, h.app.Clean(context.Background(), root, true))
	assert.NoDirExists(t, filepath.Join(root, domain.ThirdPartyDirName))
	assert.NoFileExists(t, filepath.Join(root, domain.BuildLogFile))

	lines := strings.Split(strings.TrimSpace(h.status.String()), "\n")
	assert.Equal(t, []string{"[ RM ] 3rdparty", "[ RM ] build.log"}, lines)
}
