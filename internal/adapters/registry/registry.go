// Package registry collects declarative build actions and runs them on request.
package registry

import (
	"context"
	"io"
	"slices"
	"sync"

	"go.trai.ch/envkit/internal/core/domain"
	"go.trai.ch/envkit/internal/core/ports"
	"go.trai.ch/zerr"
)

// Registry implements ports.ActionRegistry as an ordered in-memory list.
type Registry struct {
	mu      sync.Mutex
	actions []domain.Action
	targets map[string]struct{}
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{targets: make(map[string]struct{})}
}

// Register appends action. Each target may be declared by one action only.
func (r *Registry) Register(action domain.Action) error {
	if action.Command == "" && action.Func == nil {
		return zerr.With(domain.ErrEmptyAction, "label", action.Label())
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, target := range action.Targets {
		if _, ok := r.targets[target]; ok {
			return zerr.With(domain.ErrActionExists, "target", target)
		}
	}
	for _, target := range action.Targets {
		r.targets[target] = struct{}{}
	}
	r.actions = append(r.actions, action)
	return nil
}

// Actions returns a copy of the registered actions in registration order.
func (r *Registry) Actions() []domain.Action {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.actions)
}

// Run executes every action in registration order, stopping at the first failure.
// Command actions are interpreted by runner in dir.
func (r *Registry) Run(
	ctx context.Context,
	dir string,
	runner ports.ActionRunner,
	printer ports.StatusPrinter,
	stdout, stderr io.Writer,
) error {
	for _, action := range r.Actions() {
		printer.Print(action.Tag, action.Subject, action.Color)

		var err error
		if action.Func != nil {
			err = action.Func(ctx)
		} else {
			err = runner.Run(ctx, dir, action.Command, stdout, stderr)
		}
		if err != nil {
			err = zerr.Wrap(err, domain.ErrBuildStepFailed.Error())
			return zerr.With(err, "action", action.Label())
		}
	}
	return nil
}
