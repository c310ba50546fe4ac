// Package config provides the envkit.yaml loader.
package config

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/envkit/internal/core/domain"
	"go.trai.ch/envkit/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	supportedVersion = "1"
	defaultLanguage  = "c"
	defaultPattern   = "*.o"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load finds envkit.yaml at or above cwd and converts it into a domain.Config.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	root, err := l.DiscoverRoot(cwd)
	if err != nil {
		return nil, err
	}

	path := filepath.Join(root, domain.ConfigFileName)
	data, err := os.ReadFile(path) //nolint:gosec // path is discovered from cwd
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var envfile Envfile
	if err := yaml.Unmarshal(data, &envfile); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	if envfile.Version != "" && envfile.Version != supportedVersion {
		l.Logger.Warn(fmt.Sprintf("%s declares version %q, expected %q", domain.ConfigFileName, envfile.Version, supportedVersion))
	}

	return toDomain(root, &envfile)
}

// DiscoverRoot walks up from cwd to the directory containing envkit.yaml.
func (l *Loader) DiscoverRoot(cwd string) (string, error) {
	current, err := filepath.Abs(cwd)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve working directory"), "cwd", cwd)
	}

	for {
		if _, err := os.Stat(filepath.Join(current, domain.ConfigFileName)); err == nil {
			return current, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			return "", zerr.With(zerr.Wrap(domain.ErrConfigNotFound, "failed to discover project root"), "cwd", cwd)
		}
		current = parent
	}
}

func toDomain(root string, f *Envfile) (*domain.Config, error) {
	pretty, err := parsePretty(f.Pretty)
	if err != nil {
		return nil, err
	}

	cfg := &domain.Config{
		Root:      root,
		Toolchain: f.Toolchain,
		Python:    f.Python,
		ModuleDir: f.ModuleDir,
		Pretty:    pretty,
		Vars:      make(map[string]string, len(f.Vars)),
		PkgConfig: f.PkgConfig,
	}
	if cfg.ModuleDir == "" {
		cfg.ModuleDir = domain.DefaultModuleDir
	}
	maps.Copy(cfg.Vars, f.Vars)

	for _, dto := range f.ThirdParty {
		dep := domain.Dependency{
			Name:      dto.Name,
			Toolchain: dto.Toolchain,
			Includes:  dto.Includes,
		}
		if dep.Toolchain == "" {
			dep.Toolchain = f.Toolchain
		}
		if err := dep.Validate(); err != nil {
			return nil, err
		}
		cfg.ThirdParty = append(cfg.ThirdParty, dep)
	}

	for i, dto := range f.Checks {
		check := domain.Check{
			Libs:     dto.Libs,
			Headers:  dto.Headers,
			Language: strings.ToLower(dto.Language),
			Expr:     dto.Expr,
		}
		if check.Language == "" {
			check.Language = defaultLanguage
		}
		if len(check.Headers) == 0 || check.Expr == "" {
			return nil, zerr.With(domain.ErrInvalidCheck, "index", i)
		}
		cfg.Checks = append(cfg.Checks, check)
	}

	if f.Docs != nil {
		cfg.Docs = &domain.DocsSpec{Output: f.Docs.Output, Sources: f.Docs.Sources}
	}

	for _, dto := range f.GenGetOpt {
		cfg.GenGetOpt = append(cfg.GenGetOpt, domain.GenGetOptSpec{Source: dto.Source, Version: dto.Version})
	}

	if f.ClangDB != nil {
		cfg.ClangDB = &domain.ClangDBSpec{
			BuildDir: f.ClangDB.BuildDir,
			Pattern:  f.ClangDB.Pattern,
			Compiler: f.ClangDB.Compiler,
		}
		if cfg.ClangDB.Pattern == "" {
			cfg.ClangDB.Pattern = defaultPattern
		}
	}

	return cfg, nil
}

func parsePretty(s string) (domain.PrettyMode, error) {
	switch mode := domain.PrettyMode(strings.ToLower(s)); mode {
	case "":
		return domain.PrettyAuto, nil
	case domain.PrettyAuto, domain.PrettyOn, domain.PrettyOff:
		return mode, nil
	default:
		return "", zerr.With(domain.ErrInvalidPrettyMode, "pretty", s)
	}
}
