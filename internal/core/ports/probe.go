package ports

import "context"

// PathProbe locates executables on the search path.
//
//go:generate mockgen -source=probe.go -destination=mocks/mock_probe.go -package=mocks
type PathProbe interface {
	// Which returns every PATH entry holding an executable named prog, in PATH order.
	// It never fails; an unset PATH yields an empty result.
	Which(prog string) []string
}

// FileCollector finds files by name pattern under a set of directories.
type FileCollector interface {
	// Collect walks each dir for each pattern and returns matching paths relative to root.
	// Paths whose relative form or base name matches an exclude pattern are skipped.
	Collect(root string, dirs, patterns, exclude []string) ([]string, error)
}

// CheckContext compiles and runs configuration test programs.
type CheckContext interface {
	// Message announces a check.
	Message(msg string)

	// Result reports the outcome of the announced check.
	Result(ok bool)

	// RunProg builds src as a program with the given file suffix, linking libs, and runs it.
	// It returns whether both steps succeeded and the program's standard output.
	RunProg(ctx context.Context, src, suffix string, libs []string) (bool, string)
}
