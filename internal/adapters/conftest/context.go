// Package conftest compiles and runs configuration test programs against a build environment.
package conftest

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/envkit/internal/core/domain"
	"go.trai.ch/envkit/internal/core/ports"
	"go.trai.ch/zerr"
	"mvdan.cc/sh/v3/shell"
)

// Factory creates check contexts bound to an environment.
type Factory struct {
	executor ports.Executor
	logger   ports.Logger
}

// NewFactory creates a new Factory.
func NewFactory(executor ports.Executor, logger ports.Logger) *Factory {
	return &Factory{executor: executor, logger: logger}
}

// New returns a Context compiling against env and reporting progress to out.
func (f *Factory) New(env *domain.Environment, out io.Writer) *Context {
	return &Context{env: env, executor: f.executor, logger: f.logger, out: out}
}

// Context implements ports.CheckContext.
type Context struct {
	env      *domain.Environment
	executor ports.Executor
	logger   ports.Logger
	out      io.Writer
}

// Message prints msg without a line break, as the start of a check line.
func (c *Context) Message(msg string) {
	_, _ = io.WriteString(c.out, msg)
}

// Result completes the check line.
func (c *Context) Result(ok bool) {
	if ok {
		_, _ = io.WriteString(c.out, "yes\n")
		return
	}
	_, _ = io.WriteString(c.out, "no\n")
}

// RunProg compiles src with the compiler matching suffix, links libs, runs the
// program and returns its standard output. Any failure yields false.
func (c *Context) RunProg(ctx context.Context, src, suffix string, libs []string) (bool, string) {
	out, err := c.runProg(ctx, src, suffix, libs)
	if err != nil {
		c.logger.Warn(err.Error())
		return false, ""
	}
	return true, out
}

func (c *Context) runProg(ctx context.Context, src, suffix string, libs []string) (string, error) {
	compiler, err := c.compiler(suffix)
	if err != nil {
		return "", err
	}

	dir, err := os.MkdirTemp("", "envkit-conftest-")
	if err != nil {
		return "", zerr.Wrap(err, "failed to create check directory")
	}
	defer func() { _ = os.RemoveAll(dir) }()

	srcPath := filepath.Join(dir, "conftest"+suffix)
	if err := os.WriteFile(srcPath, []byte(src), domain.FilePerm); err != nil {
		return "", zerr.Wrap(err, "failed to write check source")
	}
	binPath := filepath.Join(dir, "conftest")

	var compileLog bytes.Buffer
	compile := domain.Command{
		Args: c.compileArgs(compiler, srcPath, binPath, libs),
		Dir:  c.env.Root,
	}
	if err := c.executor.Execute(ctx, compile, &compileLog, &compileLog); err != nil {
		return "", zerr.With(zerr.Wrap(err, "check program did not build"), "output", strings.TrimSpace(compileLog.String()))
	}

	var stdout bytes.Buffer
	run := domain.Command{Args: []string{binPath}, Dir: c.env.Root}
	if err := c.executor.Execute(ctx, run, &stdout, io.Discard); err != nil {
		return "", zerr.Wrap(err, "check program failed")
	}
	return stdout.String(), nil
}

func (c *Context) compiler(suffix string) ([]string, error) {
	var line string
	switch strings.ToLower(strings.TrimPrefix(suffix, ".")) {
	case "c":
		line = c.env.Get("CC", "cc")
	case "cpp", "cxx", "cc", "c++":
		line = c.env.Get("CXX", "c++")
	default:
		return nil, zerr.With(domain.ErrUnsupportedLanguage, "suffix", suffix)
	}

	fields, err := shell.Fields(line, nil)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to split compiler command"), "compiler", line)
	}
	if len(fields) == 0 {
		return nil, zerr.With(domain.ErrEmptyCommand, "compiler", line)
	}
	return fields, nil
}

func (c *Context) compileArgs(compiler []string, src, bin string, libs []string) []string {
	args := append([]string{}, compiler...)
	args = append(args, c.env.CFlags...)
	for _, dir := range c.env.CPPPath {
		args = append(args, "-I"+c.resolve(dir))
	}
	for _, def := range c.env.Defines {
		args = append(args, "-D"+def)
	}
	args = append(args, "-o", bin, src)
	for _, dir := range c.env.LibPath {
		args = append(args, "-L"+c.resolve(dir))
	}
	for _, lib := range c.env.Libs {
		args = append(args, c.linkArg(lib))
	}
	for _, lib := range libs {
		args = append(args, "-l"+lib)
	}
	return append(args, c.env.LinkFlags...)
}

// linkArg turns a Libs entry into a linker argument: file paths are passed
// as-is, bare names become -l flags.
func (c *Context) linkArg(lib string) string {
	if strings.ContainsRune(lib, '/') || strings.ContainsRune(lib, filepath.Separator) {
		return c.resolve(lib)
	}
	return "-l" + lib
}

func (c *Context) resolve(path string) string {
	if filepath.IsAbs(path) || c.env.Root == "" {
		return path
	}
	return filepath.Join(c.env.Root, path)
}
