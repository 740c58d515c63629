package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMarshalSortsKeys(t *testing.T) {
	b, err := Marshal(map[string]any{"zeta": 1, "alpha": "x", "mid": true})
	require.NoError(t, err)
	require.Equal(t, "alpha: x\nmid: true\nzeta: 1\n", string(b))
}

func TestMarshalNestedAndEmpty(t *testing.T) {
	b, err := Marshal(map[string]any{"outer": map[string]any{"b": 2, "a": 1}, "empty": map[string]any{}})
	require.NoError(t, err)
	require.Equal(t, "empty: {}\nouter:\n  a: 1\n  b: 2\n", string(b))
}

func TestInitFilesRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "configs")
	written, err := InitFiles(dir, false)
	require.NoError(t, err)
	require.Len(t, written, 2)

	g, err := LoadGlobal(dir)
	require.NoError(t, err)
	require.Equal(t, "seshat", g.AppName)

	r, err := LoadRunLog(dir)
	require.NoError(t, err)
	require.False(t, r.Enabled)
	require.Equal(t, "runlogs", r.Dir)
}

func TestInitFilesRefusesOverwrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "configs")
	_, err := InitFiles(dir, false)
	require.NoError(t, err)

	_, err = InitFiles(dir, false)
	require.Error(t, err)
	require.Contains(t, err.Error(), "refusing to overwrite")

	_, err = InitFiles(dir, true)
	require.NoError(t, err)
}

func TestInitFilesOutputIsStable(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "configs")
	_, err := InitFiles(dir, false)
	require.NoError(t, err)
	first, err := os.ReadFile(filepath.Join(dir, "global.yaml"))
	require.NoError(t, err)

	_, err = InitFiles(dir, true)
	require.NoError(t, err)
	second, err := os.ReadFile(filepath.Join(dir, "global.yaml"))
	require.NoError(t, err)
	require.Equal(t, first, second)
}
