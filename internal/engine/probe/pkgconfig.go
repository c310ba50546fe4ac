package probe

import (
	"bytes"
	"context"

	"go.trai.ch/envkit/internal/core/domain"
	"go.trai.ch/zerr"
	"mvdan.cc/sh/v3/shell"
)

// PkgConfigKey overrides the pkg-config binary.
const PkgConfigKey = "PKG_CONFIG"

const pkgConfig = "pkg-config"

// TryParseConfig runs pkg-config with args and merges the reported flags into
// env. It returns false when pkg-config is unavailable or fails; env is left
// untouched in that case.
func (p *Prober) TryParseConfig(ctx context.Context, env *domain.Environment, args string) bool {
	bin, ok := env.Lookup(PkgConfigKey)
	if !ok {
		if len(p.probe.Which(pkgConfig)) == 0 {
			return false
		}
		bin = pkgConfig
	}

	argv, err := shell.Fields(bin+" "+args, nil)
	if err != nil {
		p.logger.Warn(zerr.With(zerr.Wrap(err, "failed to split pkg-config command"), "args", args).Error())
		return false
	}

	var stdout, stderr bytes.Buffer
	if err := p.executor.Execute(ctx, domain.Command{Args: argv, Dir: env.Root}, &stdout, &stderr); err != nil {
		p.logger.Warn(zerr.With(err, "stderr", stderr.String()).Error())
		return false
	}

	flags, err := shell.Fields(stdout.String(), nil)
	if err != nil {
		p.logger.Warn(zerr.With(zerr.Wrap(err, "failed to parse pkg-config output"), "args", args).Error())
		return false
	}
	env.MergeFlags(flags)
	return true
}
