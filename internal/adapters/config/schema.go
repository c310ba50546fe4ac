package config

// Envfile represents the structure of the envkit.yaml configuration file.
type Envfile struct {
	Version    string            `yaml:"version"`
	Toolchain  string            `yaml:"toolchain"`
	Python     string            `yaml:"python"`
	ModuleDir  string            `yaml:"module_dir"`
	Pretty     string            `yaml:"pretty"`
	Vars       map[string]string `yaml:"vars"`
	ThirdParty []DependencyDTO   `yaml:"thirdparty"`
	Checks     []CheckDTO        `yaml:"checks"`
	PkgConfig  []string          `yaml:"pkgconfig"`
	Docs       *DocsDTO          `yaml:"docs"`
	GenGetOpt  []GenGetOptDTO    `yaml:"gengetopt"`
	ClangDB    *ClangDBDTO       `yaml:"clangdb"`
}

// DependencyDTO represents a third-party dependency entry.
type DependencyDTO struct {
	Name      string   `yaml:"name"`
	Toolchain string   `yaml:"toolchain"`
	Includes  []string `yaml:"includes"`
}

// CheckDTO represents a capability check entry.
type CheckDTO struct {
	Libs     []string `yaml:"libs"`
	Headers  []string `yaml:"headers"`
	Language string   `yaml:"language"`
	Expr     string   `yaml:"expr"`
}

// DocsDTO represents the documentation section.
type DocsDTO struct {
	Output  string   `yaml:"output"`
	Sources []string `yaml:"sources"`
}

// GenGetOptDTO represents an option-parser generation entry.
type GenGetOptDTO struct {
	Source  string `yaml:"source"`
	Version string `yaml:"version"`
}

// ClangDBDTO represents the compilation database section.
type ClangDBDTO struct {
	BuildDir string `yaml:"build_dir"`
	Pattern  string `yaml:"pattern"`
	Compiler string `yaml:"compiler"`
}
