package shell_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/envkit/internal/adapters/shell"
	"go.trai.ch/envkit/internal/core/domain"
	"go.trai.ch/envkit/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestExecutor_Execute_LogsLines(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	gomock.InOrder(
		mockLogger.EXPECT().Info("line1"),
		mockLogger.EXPECT().Info("line2"),
	)

	executor := shell.NewExecutor(mockLogger)
	cmd := domain.Command{Args: []string{"sh", "-c", "echo line1; echo line2"}, Dir: t.TempDir()}

	require.NoError(t, executor.Execute(context.Background(), cmd, nil, io.Discard))
}

func TestExecutor_Execute_FragmentedOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info("part1part2")

	executor := shell.NewExecutor(mockLogger)
	cmd := domain.Command{Args: []string{"sh", "-c", "printf part1; sleep 0.1; echo part2"}}

	require.NoError(t, executor.Execute(context.Background(), cmd, nil, io.Discard))
}

func TestExecutor_Execute_UnterminatedLineFlushed(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn("no newline")

	executor := shell.NewExecutor(mockLogger)
	cmd := domain.Command{Args: []string{"sh", "-c", "printf 'no newline' >&2"}}

	require.NoError(t, executor.Execute(context.Background(), cmd, io.Discard, nil))
}

func TestExecutor_Execute_Environment(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	executor := shell.NewExecutor(mockLogger)
	cmd := domain.Command{
		Args: []string{"sh", "-c", "echo $ENVKIT_TEST_VAR"},
		Env:  []string{"ENVKIT_TEST_VAR=test-value-123"},
	}

	var stdout bytes.Buffer
	require.NoError(t, executor.Execute(context.Background(), cmd, &stdout, io.Discard))
	assert.Equal(t, "test-value-123\n", stdout.String())
}

func TestExecutor_Execute_WorkingDir(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := shell.NewExecutor(mocks.NewMockLogger(ctrl))

	dir := t.TempDir()
	cmd := domain.Command{Args: []string{"sh", "-c", "echo hi > out.txt"}, Dir: dir}

	require.NoError(t, executor.Execute(context.Background(), cmd, io.Discard, io.Discard))

	data, err := os.ReadFile(filepath.Join(dir, "out.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hi\n", string(data))
}

func TestExecutor_Execute_SharedWriter(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := shell.NewExecutor(mocks.NewMockLogger(ctrl))

	var combined bytes.Buffer
	cmd := domain.Command{Args: []string{"sh", "-c", "echo out; echo err >&2"}}

	require.NoError(t, executor.Execute(context.Background(), cmd, &combined, &combined))
	assert.Equal(t, "out\nerr\n", combined.String())
}

func TestExecutor_Execute_CommandFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := shell.NewExecutor(mocks.NewMockLogger(ctrl))

	cmd := domain.Command{Args: []string{"sh", "-c", "exit 42"}}
	err := executor.Execute(context.Background(), cmd, io.Discard, io.Discard)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "command failed")
	assert.Contains(t, err.Error(), "exit status 42")
}

func TestExecutor_Execute_InvalidCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := shell.NewExecutor(mocks.NewMockLogger(ctrl))

	cmd := domain.Command{Args: []string{"nonexistent-command-xyz123"}}
	err := executor.Execute(context.Background(), cmd, io.Discard, io.Discard)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "command failed")
}

func TestExecutor_Execute_EmptyCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := shell.NewExecutor(mocks.NewMockLogger(ctrl))

	err := executor.Execute(context.Background(), domain.Command{}, io.Discard, io.Discard)
	assert.ErrorIs(t, err, domain.ErrEmptyCommand)
}

func TestExecutor_Execute_TTY(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := shell.NewExecutor(mocks.NewMockLogger(ctrl))

	var stdout bytes.Buffer
	cmd := domain.Command{Args: []string{"sh", "-c", "echo tty-out"}, TTY: true}

	require.NoError(t, executor.Execute(context.Background(), cmd, &stdout, io.Discard))
	assert.Contains(t, stdout.String(), "tty-out")
}

func TestExecutor_Execute_TTYFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := shell.NewExecutor(mocks.NewMockLogger(ctrl))

	cmd := domain.Command{Args: []string{"sh", "-c", "exit 3"}, TTY: true}
	err := executor.Execute(context.Background(), cmd, io.Discard, io.Discard)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "command failed")
}
