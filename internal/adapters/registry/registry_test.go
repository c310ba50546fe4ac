package registry_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/envkit/internal/adapters/registry"
	"go.trai.ch/envkit/internal/core/domain"
	"go.trai.ch/envkit/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestRegistry_RegisterOrder(t *testing.T) {
	r := registry.New()

	require.NoError(t, r.Register(domain.Action{Targets: []string{"a"}, Command: "make a", Tag: "A"}))
	require.NoError(t, r.Register(domain.Action{Targets: []string{"b", "c"}, Command: "make b", Tag: "B"}))

	actions := r.Actions()
	require.Len(t, actions, 2)
	assert.Equal(t, "A", actions[0].Tag)
	assert.Equal(t, "B", actions[1].Tag)

	actions[0].Tag = "mutated"
	assert.Equal(t, "A", r.Actions()[0].Tag)
}

func TestRegistry_DuplicateTarget(t *testing.T) {
	r := registry.New()
	require.NoError(t, r.Register(domain.Action{Targets: []string{"build/docs/.done"}, Command: "x"}))

	err := r.Register(domain.Action{Targets: []string{"other", "build/docs/.done"}, Command: "y"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrActionExists.Error())

	// A rejected action must not reserve its other targets.
	require.NoError(t, r.Register(domain.Action{Targets: []string{"other"}, Command: "z"}))
	assert.Len(t, r.Actions(), 2)
}

func TestRegistry_EmptyAction(t *testing.T) {
	err := registry.New().Register(domain.Action{Targets: []string{"t"}, Tag: "NOP"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrEmptyAction.Error())
}

func TestRegistry_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockActionRunner(ctrl)
	printer := mocks.NewMockStatusPrinter(ctrl)

	var funcCalled bool
	r := registry.New()
	require.NoError(t, r.Register(domain.Action{Targets: []string{"a.c"}, Command: "gen a", Tag: "GGO", Subject: "a.ggo", Color: "purple"}))
	require.NoError(t, r.Register(domain.Action{Tag: "RM", Subject: "build", Color: "red", Func: func(context.Context) error {
		funcCalled = true
		return nil
	}}))

	gomock.InOrder(
		printer.EXPECT().Print("GGO", "a.ggo", "purple"),
		runner.EXPECT().Run(gomock.Any(), "/src", "gen a", io.Discard, io.Discard).Return(nil),
		printer.EXPECT().Print("RM", "build", "red"),
	)

	require.NoError(t, r.Run(context.Background(), "/src", runner, printer, io.Discard, io.Discard))
	assert.True(t, funcCalled)
}

func TestRegistry_RunStopsAtFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockActionRunner(ctrl)
	printer := mocks.NewMockStatusPrinter(ctrl)

	r := registry.New()
	require.NoError(t, r.Register(domain.Action{Command: "false", Tag: "FAIL", Subject: "first"}))
	require.NoError(t, r.Register(domain.Action{Command: "true", Tag: "NEVER"}))

	printer.EXPECT().Print("FAIL", "first", "")
	runner.EXPECT().Run(gomock.Any(), gomock.Any(), "false", gomock.Any(), gomock.Any()).Return(errors.New("exit status 1"))

	err := r.Run(context.Background(), "/src", runner, printer, io.Discard, io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrBuildStepFailed.Error())
	assert.Contains(t, err.Error(), "exit status 1")
}
