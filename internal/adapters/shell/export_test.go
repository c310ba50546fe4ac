package shell

// NewRunnerWithEnv creates a Runner with a fixed environment.
func NewRunnerWithEnv(env []string) *Runner {
	return &Runner{environ: func() []string { return env }}
}
