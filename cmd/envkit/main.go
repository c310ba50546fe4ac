// Package main is the entry point for the envkit build helper.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/envkit/cmd/envkit/commands"
	"go.trai.ch/envkit/internal/app"
	"go.trai.ch/envkit/internal/core/domain"
	_ "go.trai.ch/envkit/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run(opts ...func(*app.App)) int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}

	for _, opt := range opts {
		opt(components.App)
	}

	cli := commands.New(components.App, components.Logger)

	if err := cli.Execute(ctx); err != nil {
		if fatal, ok := domain.AsFatal(err); ok {
			_, _ = os.Stderr.WriteString("error: " + fatal.Message() + "\n")
			return 1
		}
		if errors.Is(err, domain.ErrCheckFailed) {
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
