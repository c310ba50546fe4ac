// Package probe inspects the toolchain: compiler versions, library capabilities and pkg-config flags.
package probe

import (
	"bufio"
	"bytes"
	"context"
	"strings"

	"go.trai.ch/envkit/internal/core/domain"
	"go.trai.ch/envkit/internal/core/ports"
)

// Prober runs toolchain probes through an executor.
type Prober struct {
	executor ports.Executor
	probe    ports.PathProbe
	logger   ports.Logger
}

// NewProber creates a new Prober.
func NewProber(executor ports.Executor, probe ports.PathProbe, logger ports.Logger) *Prober {
	return &Prober{executor: executor, probe: probe, logger: logger}
}

// CompilerVersion runs `<compiler> --version` and parses the first dotted
// version on the first output line. Any failure yields domain.UnknownVersion.
func (p *Prober) CompilerVersion(ctx context.Context, compiler string) domain.Version {
	var out bytes.Buffer
	cmd := domain.Command{Args: []string{compiler, "--version"}}
	if err := p.executor.Execute(ctx, cmd, &out, &out); err != nil && out.Len() == 0 {
		return domain.UnknownVersion
	}
	return domain.ParseVersion(firstLine(out.String()))
}

func firstLine(s string) string {
	sc := bufio.NewScanner(strings.NewReader(s))
	if sc.Scan() {
		return sc.Text()
	}
	return ""
}
