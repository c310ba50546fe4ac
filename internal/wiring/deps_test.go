package wiring_test

import (
	"context"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/require"
	"go.trai.ch/envkit/internal/app"
	_ "go.trai.ch/envkit/internal/wiring"
)

// TestGraftDependencies checks the dependency graph statically.
func TestGraftDependencies(t *testing.T) {
	// AssertDepsValid infers the dependency ID from the package of the type
	// passed to Dep[T]; every port lives in package ports, so nodes resolving
	// ports.X cannot be matched to their declared adapter IDs.
	t.Skip("Skipping Graft validation due to static analysis limitation with shared ports package")
	graft.AssertDepsValid(t, "../../internal")
}

func TestExecuteForComponents(t *testing.T) {
	components, _, err := graft.ExecuteFor[*app.Components](context.Background())
	require.NoError(t, err)
	require.NotNil(t, components.App)
	require.NotNil(t, components.Logger)
}
