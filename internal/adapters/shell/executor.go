// Package shell runs external programs and shell command lines.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/creack/pty"
	"go.trai.ch/envkit/internal/core/domain"
	"go.trai.ch/envkit/internal/core/ports"
	"go.trai.ch/zerr"
)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{logger: logger}
}

// Execute runs the command and waits for it to complete.
// Streams without a writer are forwarded to the logger line by line.
func (e *Executor) Execute(ctx context.Context, cmd domain.Command, stdout, stderr io.Writer) error {
	if len(cmd.Args) == 0 {
		return domain.ErrEmptyCommand
	}

	if stdout == nil {
		lw := &logWriter{logger: e.logger, level: "info"}
		defer func() { _ = lw.Close() }()
		stdout = lw
	}
	if stderr == nil {
		lw := &logWriter{logger: e.logger, level: "error"}
		defer func() { _ = lw.Close() }()
		stderr = lw
	}

	var err error
	if cmd.TTY {
		err = runPTY(newCmd(ctx, cmd), stdout)
		if errors.Is(err, errNoPTY) {
			err = runPipes(newCmd(ctx, cmd), stdout, stderr)
		}
	} else {
		err = runPipes(newCmd(ctx, cmd), stdout, stderr)
	}

	if err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		err = zerr.Wrap(err, domain.ErrCommandFailed.Error())
		err = zerr.With(err, "command", strings.Join(cmd.Args, " "))
		return zerr.With(err, "exit_code", exitCode)
	}
	return nil
}

func newCmd(ctx context.Context, cmd domain.Command) *exec.Cmd {
	c := exec.CommandContext(ctx, cmd.Args[0], cmd.Args[1:]...) //nolint:gosec // user provided command
	c.Dir = cmd.Dir
	c.Env = append(os.Environ(), cmd.Env...)
	return c
}

func runPipes(c *exec.Cmd, stdout, stderr io.Writer) error {
	c.Stdout = stdout
	c.Stderr = stderr
	return c.Run()
}

var errNoPTY = errors.New("pseudo-terminal unavailable")

// runPTY runs c on a pseudo-terminal. Both streams arrive merged on stdout.
func runPTY(c *exec.Cmd, stdout io.Writer) error {
	ptmx, err := pty.Start(c)
	if err != nil {
		return errors.Join(errNoPTY, err)
	}

	ioDone := make(chan struct{})
	go func() {
		defer close(ioDone)
		// Reading the master fails with EIO once the child side is closed.
		_, _ = io.Copy(stdout, ptmx)
	}()

	err = c.Wait()
	<-ioDone
	_ = ptmx.Close()
	return err
}

type logWriter struct {
	logger ports.Logger
	level  string
	buf    []byte
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	// PTYs terminate lines with \r\n.
	msg := strings.TrimSuffix(string(line), "\r")

	if w.level == "info" {
		w.logger.Info(msg)
	} else {
		w.logger.Warn(msg)
	}
}
