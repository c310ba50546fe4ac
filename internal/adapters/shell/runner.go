package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"go.trai.ch/envkit/internal/core/domain"
	"go.trai.ch/zerr"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// Runner implements ports.ActionRunner with an embedded POSIX shell interpreter,
// so action command lines do not depend on a system /bin/sh.
type Runner struct {
	environ func() []string
}

// NewRunner creates a Runner that inherits the process environment.
func NewRunner() *Runner {
	return &Runner{environ: os.Environ}
}

// Run parses and interprets command in dir.
func (r *Runner) Run(ctx context.Context, dir, command string, stdout, stderr io.Writer) error {
	if strings.TrimSpace(command) == "" {
		return domain.ErrEmptyCommand
	}

	file, err := syntax.NewParser().Parse(strings.NewReader(command), "")
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to parse command"), "command", command)
	}

	runner, err := interp.New(
		interp.Dir(dir),
		interp.Env(expand.ListEnviron(r.environ()...)),
		interp.StdIO(nil, stdout, stderr),
	)
	if err != nil {
		return zerr.Wrap(err, "failed to create shell interpreter")
	}

	if err := runner.Run(ctx, file); err != nil {
		exitCode := -1
		var status interp.ExitStatus
		if errors.As(err, &status) {
			exitCode = int(status)
		}
		err = zerr.Wrap(err, domain.ErrCommandFailed.Error())
		err = zerr.With(err, "command", command)
		return zerr.With(err, "exit_code", exitCode)
	}
	return nil
}
