package domain

import "path/filepath"

const (
	// ThirdPartyDirName is the directory holding built dependencies and their markers.
	ThirdPartyDirName = "3rdparty"

	// MarkerSuffix is appended to a dependency name to form its completion marker.
	MarkerSuffix = ".done"

	// IncludeDirName is the header root inside a built dependency.
	IncludeDirName = "include"

	// LibDirName is the library root inside a built dependency.
	LibDirName = "lib"

	// LibPattern selects link inputs under a dependency's lib tree.
	LibPattern = "lib*"

	// BuildLogFile receives the builder's combined output in pretty mode.
	BuildLogFile = "build.log"

	// BuilderScript is the external dependency builder, relative to the project root.
	BuilderScript = "scripts/3rdparty.py"

	// DefaultModuleDir is the default directory holding the wrapper scripts, relative to the project root.
	DefaultModuleDir = "scripts"

	// WrappersDirName holds the auxiliary wrapper scripts, relative to the module directory.
	WrappersDirName = "wrappers"

	// EnvkitDirName is the name of the internal workspace directory.
	EnvkitDirName = ".envkit"

	// StoreDirName is the name of the bootstrap record directory.
	StoreDirName = "store"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "envkit.yaml"

	// DocsMarkerName is the marker produced inside a documentation output directory.
	DocsMarkerName = ".done"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// MarkerPath returns the completion marker path for a dependency, relative to the project root.
func MarkerPath(name string) string {
	return filepath.Join(ThirdPartyDirName, name+MarkerSuffix)
}

// DependencyDir returns the install tree of a dependency, relative to the project root.
func DependencyDir(name string) string {
	return filepath.Join(ThirdPartyDirName, name)
}

// IncludePath returns the header directory for a dependency and include subdirectory.
// An empty subdirectory yields the include root itself.
func IncludePath(name, sub string) string {
	return filepath.Join(ThirdPartyDirName, name, IncludeDirName, sub)
}

// LibPath returns the library directory of a dependency.
func LibPath(name string) string {
	return filepath.Join(ThirdPartyDirName, name, LibDirName)
}

// DefaultStorePath returns the bootstrap record directory, relative to the project root.
func DefaultStorePath() string {
	return filepath.Join(EnvkitDirName, StoreDirName)
}
