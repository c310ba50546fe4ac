package detector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/envkit/internal/adapters/detector"
	"go.trai.ch/envkit/internal/core/domain"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name  string
		isTTY bool
		ci    string
		want  bool
	}{
		{name: "terminal", isTTY: true, want: true},
		{name: "terminal in CI", isTTY: true, ci: "true", want: false},
		{name: "terminal with CI=1", isTTY: true, ci: "1", want: false},
		{name: "terminal with CI=false", isTTY: true, ci: "false", want: true},
		{name: "pipe", isTTY: false, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, detector.Detect(tt.isTTY, tt.ci))
		})
	}
}

func TestDetectPretty_CI(t *testing.T) {
	t.Setenv("CI", "true")
	assert.False(t, detector.DetectPretty())
}

func TestResolvePretty(t *testing.T) {
	assert.True(t, detector.ResolvePretty(false, domain.PrettyOn))
	assert.False(t, detector.ResolvePretty(true, domain.PrettyOff))
	assert.True(t, detector.ResolvePretty(true, domain.PrettyAuto))
	assert.False(t, detector.ResolvePretty(false, domain.PrettyAuto))
	assert.True(t, detector.ResolvePretty(true, ""))
}
