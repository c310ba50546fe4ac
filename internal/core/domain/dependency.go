package domain

import (
	"regexp"
	"time"

	"go.trai.ch/zerr"
)

// DependencyState is the bootstrap state of a third-party dependency.
type DependencyState uint8

const (
	// Unbuilt means no completion marker exists; the builder must run.
	Unbuilt DependencyState = iota
	// Built means a completion marker exists. Tree contents are trusted as-is.
	Built
)

// String returns the lower-case state name.
func (s DependencyState) String() string {
	switch s {
	case Built:
		return "built"
	case Unbuilt:
		return "unbuilt"
	default:
		return "unknown"
	}
}

var validDependencyName = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._+-]*$`)

// Dependency identifies a third-party component to bootstrap.
type Dependency struct {
	// Name is the component name, used for 3rdparty/<name>/ and its marker.
	Name string

	// Toolchain is passed verbatim to the builder script. Empty selects a native build.
	Toolchain string

	// Includes lists include subdirectories to add to the header search path.
	// Empty means the include root.
	Includes []string
}

// Validate checks that the dependency can be mapped onto the 3rdparty layout.
func (d Dependency) Validate() error {
	if !validDependencyName.MatchString(d.Name) {
		return zerr.With(ErrInvalidDependencyName, "name", d.Name)
	}
	return nil
}

// IncludeSubdirs returns the include subdirectories, defaulting to the include root.
func (d Dependency) IncludeSubdirs() []string {
	if len(d.Includes) == 0 {
		return []string{""}
	}
	return d.Includes
}

// BootstrapRecord describes a successful builder run. It is informational only;
// the completion marker remains the sole source of truth for the built state.
type BootstrapRecord struct {
	Name      string        `json:"name,omitzero"`
	Toolchain string        `json:"toolchain,omitzero"`
	Duration  time.Duration `json:"duration,omitzero"`
	Timestamp time.Time     `json:"timestamp,omitzero"`
}
