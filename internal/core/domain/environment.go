package domain

import (
	"slices"
	"strings"
)

// Environment is the build environment handed to every operation. It replaces
// the host build system's ambient construction environment: list mutations are
// explicit method calls. It is mutated in place and is not safe for concurrent use.
type Environment struct {
	// Root is the project root. Relative paths in the environment resolve against it.
	Root string

	// ModuleDir is the directory holding the wrapper scripts, relative to Root.
	ModuleDir string

	// Toolchain is the default toolchain identifier for dependency builds.
	Toolchain string

	// Pretty selects quiet output: builder output goes to build.log instead of the terminal.
	Pretty bool

	// Vars holds build-system configuration keys such as DOXYGEN, GENGETOPT, PKG_CONFIG, CC and CXX.
	Vars map[string]string

	CPPPath   []string
	LibPath   []string
	Libs      []string
	Defines   []string
	CFlags    []string
	LinkFlags []string
}

// NewEnvironment creates an empty environment rooted at root.
func NewEnvironment(root string) *Environment {
	return &Environment{
		Root: root,
		Vars: make(map[string]string),
	}
}

// Lookup returns a configuration key and whether it is set to a non-empty value.
func (e *Environment) Lookup(key string) (string, bool) {
	v, ok := e.Vars[key]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// Get returns a configuration key, or def when it is not set.
func (e *Environment) Get(key, def string) string {
	if v, ok := e.Lookup(key); ok {
		return v
	}
	return def
}

// Set assigns a configuration key.
func (e *Environment) Set(key, value string) {
	if e.Vars == nil {
		e.Vars = make(map[string]string)
	}
	e.Vars[key] = value
}

// PrependCPPPath inserts a header search directory ahead of all existing ones.
func (e *Environment) PrependCPPPath(dir string) {
	e.CPPPath = slices.Insert(e.CPPPath, 0, dir)
}

// AppendLibs adds link inputs after all existing ones.
func (e *Environment) AppendLibs(libs ...string) {
	e.Libs = append(e.Libs, libs...)
}

// MergeFlags sorts compiler/linker flags into the matching lists, skipping
// entries that are already present.
func (e *Environment) MergeFlags(flags []string) {
	for i := 0; i < len(flags); i++ {
		f := flags[i]
		switch {
		case f == "-I" || f == "-L" || f == "-l" || f == "-D":
			if i+1 < len(flags) {
				e.MergeFlags([]string{f + flags[i+1]})
				i++
			}
		case strings.HasPrefix(f, "-I"):
			e.CPPPath = appendUnique(e.CPPPath, f[2:])
		case strings.HasPrefix(f, "-L"):
			e.LibPath = appendUnique(e.LibPath, f[2:])
		case strings.HasPrefix(f, "-l"):
			e.Libs = appendUnique(e.Libs, f[2:])
		case strings.HasPrefix(f, "-D"):
			e.Defines = appendUnique(e.Defines, f[2:])
		case f == "-pthread":
			e.CFlags = appendUnique(e.CFlags, f)
			e.LinkFlags = appendUnique(e.LinkFlags, f)
		case strings.HasPrefix(f, "-Wl,"):
			e.LinkFlags = appendUnique(e.LinkFlags, f)
		default:
			e.CFlags = appendUnique(e.CFlags, f)
		}
	}
}

// Clone returns a deep copy.
func (e *Environment) Clone() *Environment {
	c := *e
	c.Vars = make(map[string]string, len(e.Vars))
	for k, v := range e.Vars {
		c.Vars[k] = v
	}
	c.CPPPath = slices.Clone(e.CPPPath)
	c.LibPath = slices.Clone(e.LibPath)
	c.Libs = slices.Clone(e.Libs)
	c.Defines = slices.Clone(e.Defines)
	c.CFlags = slices.Clone(e.CFlags)
	c.LinkFlags = slices.Clone(e.LinkFlags)
	return &c
}

func appendUnique(list []string, v string) []string {
	if slices.Contains(list, v) {
		return list
	}
	return append(list, v)
}

// Strings normalises a variadic scalar-or-sequence argument into a slice,
// dropping empty entries.
func Strings(v ...string) []string {
	out := make([]string, 0, len(v))
	for _, s := range v {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
