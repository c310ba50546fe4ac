package which_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/envkit/internal/adapters/which"
)

func env(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func writeFile(t *testing.T, path string, mode os.FileMode) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), mode))
}

func TestWhich_PathOrder(t *testing.T) {
	a := t.TempDir()
	b := t.TempDir()
	writeFile(t, filepath.Join(a, "doxygen"), 0o755)
	writeFile(t, filepath.Join(b, "doxygen"), 0o755)

	probe := which.NewWithEnv(env(map[string]string{
		"PATH": strings.Join([]string{b, a}, string(os.PathListSeparator)),
	}))

	assert.Equal(t, []string{filepath.Join(b, "doxygen"), filepath.Join(a, "doxygen")}, probe.Which("doxygen"))
}

func TestWhich_DuplicatesKept(t *testing.T) {
	a := t.TempDir()
	writeFile(t, filepath.Join(a, "cc"), 0o755)

	probe := which.NewWithEnv(env(map[string]string{
		"PATH": strings.Join([]string{a, a}, string(os.PathListSeparator)),
	}))

	assert.Len(t, probe.Which("cc"), 2)
}

func TestWhich_Absent(t *testing.T) {
	probe := which.NewWithEnv(env(map[string]string{"PATH": t.TempDir()}))

	got := probe.Which("definitely-not-here")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestWhich_PathUnset(t *testing.T) {
	probe := which.NewWithEnv(env(map[string]string{}))

	got := probe.Which("sh")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestWhich_SkipsNonExecutableAndDirs(t *testing.T) {
	a := t.TempDir()
	writeFile(t, filepath.Join(a, "plain"), 0o644)
	require.NoError(t, os.Mkdir(filepath.Join(a, "dir"), 0o750))

	probe := which.NewWithEnv(env(map[string]string{"PATH": a}))

	assert.Empty(t, probe.Which("plain"))
	assert.Empty(t, probe.Which("dir"))
}

func TestWhich_PathExt(t *testing.T) {
	a := t.TempDir()
	writeFile(t, filepath.Join(a, "gengetopt"), 0o755)
	writeFile(t, filepath.Join(a, "gengetopt.exe"), 0o755)

	probe := which.NewWithEnv(env(map[string]string{
		"PATH":    a,
		"PATHEXT": string(os.PathListSeparator) + ".exe" + string(os.PathListSeparator) + ".bat",
	}))

	assert.Equal(t, []string{filepath.Join(a, "gengetopt"), filepath.Join(a, "gengetopt.exe")}, probe.Which("gengetopt"))
}
