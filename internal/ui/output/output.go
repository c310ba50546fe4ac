// Package output creates termenv outputs with a consistent color profile.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// ColorProfile returns Ascii when NO_COLOR is set and the detected terminal profile otherwise.
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// New creates a termenv.Output for w using ColorProfile.
// A nil writer defaults to stderr.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}

	opts = append(opts,
		termenv.WithProfile(ColorProfile()),
		termenv.WithTTY(true),
	)

	return termenv.NewOutput(w, opts...)
}
