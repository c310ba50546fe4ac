package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/envkit/internal/core/domain"
)

func TestEnvironment_PrependCPPPath(t *testing.T) {
	env := domain.NewEnvironment("/src")
	env.CPPPath = []string{"src/include"}

	env.PrependCPPPath("3rdparty/a/include")
	env.PrependCPPPath("3rdparty/b/include")

	assert.Equal(t, []string{"3rdparty/b/include", "3rdparty/a/include", "src/include"}, env.CPPPath)
}

func TestEnvironment_AppendLibs(t *testing.T) {
	env := domain.NewEnvironment("/src")
	env.AppendLibs("m")
	env.AppendLibs("3rdparty/a/lib/liba.a", "3rdparty/a/lib/liba.so")

	assert.Equal(t, []string{"m", "3rdparty/a/lib/liba.a", "3rdparty/a/lib/liba.so"}, env.Libs)
}

func TestEnvironment_MergeFlags(t *testing.T) {
	env := domain.NewEnvironment("/src")
	env.MergeFlags([]string{
		"-I/usr/include/pulse", "-D_REENTRANT", "-pthread",
		"-L/usr/lib", "-lpulse", "-l", "pulse-simple", "-Wl,--as-needed", "-O2",
		"-I/usr/include/pulse",
	})

	assert.Equal(t, []string{"/usr/include/pulse"}, env.CPPPath)
	assert.Equal(t, []string{"_REENTRANT"}, env.Defines)
	assert.Equal(t, []string{"/usr/lib"}, env.LibPath)
	assert.Equal(t, []string{"pulse", "pulse-simple"}, env.Libs)
	assert.Equal(t, []string{"-pthread", "-O2"}, env.CFlags)
	assert.Equal(t, []string{"-pthread", "-Wl,--as-needed"}, env.LinkFlags)
}

func TestEnvironment_Lookup(t *testing.T) {
	env := domain.NewEnvironment("/src")
	env.Set("DOXYGEN", "/opt/bin/doxygen")
	env.Set("EMPTY", "")

	v, ok := env.Lookup("DOXYGEN")
	assert.True(t, ok)
	assert.Equal(t, "/opt/bin/doxygen", v)

	_, ok = env.Lookup("EMPTY")
	assert.False(t, ok)

	assert.Equal(t, "gengetopt", env.Get("GENGETOPT", "gengetopt"))
}

func TestEnvironment_Clone(t *testing.T) {
	env := domain.NewEnvironment("/src")
	env.Set("CC", "gcc")
	env.AppendLibs("z")

	c := env.Clone()
	c.Set("CC", "clang")
	c.AppendLibs("m")

	assert.Equal(t, "gcc", env.Get("CC", ""))
	assert.Equal(t, []string{"z"}, env.Libs)
}

func TestStrings(t *testing.T) {
	assert.Equal(t, []string{"a"}, domain.Strings("a"))
	assert.Equal(t, []string{"a", "b"}, domain.Strings("a", "", "b"))
	assert.Empty(t, domain.Strings())
}
