package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/envkit/internal/adapters/logger"
	"go.trai.ch/envkit/internal/core/domain"
	"go.trai.ch/zerr"
)

func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Info(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Info("bootstrapping openssl")

	goldie.New(t).Assert(t, "info_basic", buf.Bytes())
}

func TestLogger_Warn(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Warn("pkg-config not found")

	goldie.New(t).Assert(t, "warn_basic", buf.Bytes())
}

func TestLogger_Error(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		goldenName string
	}{
		{
			name:       "plain error",
			err:        errors.New("something broke"),
			goldenName: "error_plain",
		},
		{
			name: "zerr chain",
			err: zerr.Wrap(
				zerr.Wrap(errors.New("exit status 2"), "command failed"),
				"bootstrap openssl",
			),
			goldenName: "error_chain",
		},
		{
			name: "fatal with cause",
			err: domain.DieWith(
				zerr.With(zerr.Wrap(domain.ErrBuildStepFailed, "run builder"), "name", "openssl"),
				"can't make `%s', see `%s' for details", "openssl", domain.BuildLogFile,
			),
			goldenName: "error_fatal",
		},
		{
			name:       "multiline message",
			err:        zerr.New("first line\nsecond line"),
			goldenName: "error_multiline",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Error(tt.err)

			goldie.New(t).Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_ErrorNil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_SetJSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)
	lg.Error(zerr.Wrap(errors.New("exit status 1"), "command failed"))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "ERROR", rec["level"])
	assert.Equal(t, "operation failed", rec["msg"])
	errGroup, ok := rec["error"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "command failed", errGroup["msg"])
	assert.Equal(t, "exit status 1", errGroup["cause"])
}

func TestLogger_SetOutputKeepsJSON(t *testing.T) {
	lg, _ := newTestLogger(t)
	lg.SetJSON(true)

	buf := &bytes.Buffer{}
	lg.SetOutput(buf)
	lg.Info("hello")

	assert.Contains(t, buf.String(), `"msg":"hello"`)
}

func TestCollectMessages(t *testing.T) {
	err := zerr.With(
		zerr.Wrap(errors.New("root cause"), "outer"),
		"key", "value",
	)

	assert.Equal(t, []string{"outer", "root cause"}, logger.CollectMessages(err))
	assert.Equal(t, []string{"root cause"}, logger.CollectMessages(zerr.With(errors.New("root cause"), "k", 1)))
}
