package status_test

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/envkit/internal/adapters/status"
)

func TestPrinter_Print(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	p := status.NewPrinter(buf)
	p.Print("MAKE", "openssl", "yellow")
	p.Print("DOXYGEN", "build/docs", "purple")
	p.Print("GGO", "src/tools/cmdline.ggo", "purple")
	p.Print("RM", "3rdparty", "red")

	goldie.New(t).Assert(t, "status_lines", buf.Bytes())
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "[ MAKE ] openssl", status.Format("MAKE", "openssl"))
	assert.Equal(t, "[ DONE ]", status.Format("DONE", ""))
}
