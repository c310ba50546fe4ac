package domain

// PrettyMode selects whether builder output is captured (pretty) or streamed (verbose).
type PrettyMode string

const (
	// PrettyAuto captures output when stdout is a terminal and CI is not set.
	PrettyAuto PrettyMode = "auto"
	// PrettyOn always captures output.
	PrettyOn PrettyMode = "true"
	// PrettyOff always streams output.
	PrettyOff PrettyMode = "false"
)

// Check is a capability probe request.
type Check struct {
	Libs     []string
	Headers  []string
	Language string
	Expr     string
}

// GenGetOptSpec requests option-parser generation from a .ggo file.
type GenGetOptSpec struct {
	Source  string
	Version string
}

// DocsSpec requests documentation generation.
type DocsSpec struct {
	Output  string
	Sources []string
}

// ClangDBSpec requests a compilation database command.
type ClangDBSpec struct {
	BuildDir string
	Pattern  string
	Compiler string
}

// Config is the loaded project configuration.
type Config struct {
	Root       string
	Toolchain  string
	Python     string
	ModuleDir  string
	Pretty     PrettyMode
	Vars       map[string]string
	ThirdParty []Dependency
	Checks     []Check
	PkgConfig  []string
	Docs       *DocsSpec
	GenGetOpt  []GenGetOptSpec
	ClangDB    *ClangDBSpec
}
