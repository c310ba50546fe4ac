package domain

import "context"

// Action is a declarative build rule: targets produced from sources by a shell
// command, or by an in-process function. Execution belongs to the host.
type Action struct {
	Targets []string
	Sources []string

	// Command is a shell command line. Ignored when Func is set.
	Command string

	// Func runs in-process instead of Command.
	Func func(ctx context.Context) error

	// Tag and Subject form the status line, e.g. DOXYGEN build/docs.
	Tag     string
	Subject string

	// Color names the status color: yellow, purple, red, green.
	Color string
}

// Label returns the status text of the action.
func (a Action) Label() string {
	if a.Subject == "" {
		return a.Tag
	}
	return a.Tag + " " + a.Subject
}

// ObjectRef references an object file to be compiled from Source by the host.
type ObjectRef struct {
	Source string
}

// Command is a subprocess invocation.
type Command struct {
	// Args is the program followed by its arguments.
	Args []string

	// Dir is the working directory. Empty means the current directory.
	Dir string

	// Env is appended to the inherited process environment as KEY=VALUE pairs.
	Env []string

	// TTY runs the process attached to a pseudo-terminal when one can be allocated.
	TTY bool
}
