package output_test

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/envkit/internal/ui/output"
)

func TestColorProfile_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, termenv.Ascii, output.ColorProfile())
}

func TestNew(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	out := output.New(&buf)

	_, _ = out.WriteString(out.String("plain").Foreground(termenv.ANSIRed).String())
	assert.Equal(t, "plain", buf.String())
}

func TestNew_Nil(t *testing.T) {
	assert.NotNil(t, output.New(nil))
}
