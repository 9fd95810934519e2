package props

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProps(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "defaults.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeProps(t, `
os.name: linux
user.language: en
installer.version: 5.2.4
threads: 4
verbose: true
ratio: 0.5
empty:
`)

	properties, err := Load(path)
	require.NoError(t, err)

	want := map[string]string{
		"os.name":           "linux",
		"user.language":     "en",
		"installer.version": "5.2.4",
		"threads":           "4",
		"verbose":           "true",
		"ratio":             "0.5",
		"empty":             "",
	}
	assert.Empty(t, cmp.Diff(want, properties))
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := Load(writeProps(t, "a: [unclosed"))
		require.Error(t, err)
	})

	t.Run("nested values are rejected", func(t *testing.T) {
		_, err := Load(writeProps(t, "nested:\n  a: 1\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "scalar")
	})
}
