package commands

import (
	"fmt"
	"io"
	"strings"

	"go.trai.ch/envkit/internal/core/domain"
)

// printEnvironment writes the environment's path and flag lists, one per line.
// Empty lists are omitted.
func printEnvironment(w io.Writer, env *domain.Environment) {
	lists := []struct {
		name   string
		values []string
	}{
		{"CPPPATH", env.CPPPath},
		{"LIBPATH", env.LibPath},
		{"LIBS", env.Libs},
		{"CPPDEFINES", env.Defines},
		{"CCFLAGS", env.CFlags},
		{"LINKFLAGS", env.LinkFlags},
	}
	for _, l := range lists {
		if len(l.values) == 0 {
			continue
		}
		_, _ = fmt.Fprintf(w, "%s=%s\n", l.name, strings.Join(l.values, " "))
	}
}

func printLines(w io.Writer, lines []string) {
	for _, line := range lines {
		_, _ = fmt.Fprintln(w, line)
	}
}
