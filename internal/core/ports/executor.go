// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"

	"go.trai.ch/envkit/internal/core/domain"
)

// Executor defines the interface for running external programs.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the command and blocks until it exits.
	//
	// A nil stdout or stderr sends the corresponding stream to the logger line by line.
	// It returns an error wrapping domain.ErrCommandFailed if the process cannot be
	// started or exits with a non-zero status.
	Execute(ctx context.Context, cmd domain.Command, stdout, stderr io.Writer) error
}

// ActionRunner runs shell command lines of registered actions.
type ActionRunner interface {
	// Run interprets command in dir.
	Run(ctx context.Context, dir, command string, stdout, stderr io.Writer) error
}
