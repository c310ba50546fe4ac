// Package detector decides whether builder output should be captured or streamed.
package detector

import (
	"os"

	"go.trai.ch/envkit/internal/core/domain"
	"golang.org/x/term"
)

// DetectPretty reports whether quiet output suits the environment:
// stdout is a terminal and CI is not set.
func DetectPretty() bool {
	return detect(term.IsTerminal(int(os.Stdout.Fd())), os.Getenv("CI"))
}

func detect(isTTY bool, ci string) bool {
	isCI := ci == "true" || ci == "1"
	return isTTY && !isCI
}

// ResolvePretty applies a configured mode to the detected default.
func ResolvePretty(detected bool, mode domain.PrettyMode) bool {
	switch mode {
	case domain.PrettyOn:
		return true
	case domain.PrettyOff:
		return false
	default:
		return detected
	}
}

// IsTerminal reports whether stdout is attached to a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
