package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("positional definitions path", func(t *testing.T) {
		var out bytes.Buffer
		config, shouldExit, err := Parse([]string{"vars.hcl"}, &out)
		require.NoError(t, err)
		require.False(t, shouldExit)
		assert.Equal(t, "vars.hcl", config.DefinitionsPath)
		assert.Equal(t, "text", config.LogFormat)
		assert.Equal(t, "warn", config.LogLevel)
	})

	t.Run("flags override defaults", func(t *testing.T) {
		var out bytes.Buffer
		config, shouldExit, err := Parse([]string{
			"-defs", "defs/",
			"-properties", "seed.yaml",
			"-log-format", "json",
			"-log-level", "debug",
		}, &out)
		require.NoError(t, err)
		require.False(t, shouldExit)
		assert.Equal(t, "defs/", config.DefinitionsPath)
		assert.Equal(t, "seed.yaml", config.PropertiesPath)
		assert.Equal(t, "json", config.LogFormat)
		assert.Equal(t, "debug", config.LogLevel)
	})

	t.Run("shorthand flag", func(t *testing.T) {
		var out bytes.Buffer
		config, _, err := Parse([]string{"-d", "vars.hcl"}, &out)
		require.NoError(t, err)
		assert.Equal(t, "vars.hcl", config.DefinitionsPath)
	})

	t.Run("no path prints usage and exits cleanly", func(t *testing.T) {
		var out bytes.Buffer
		config, shouldExit, err := Parse(nil, &out)
		require.NoError(t, err)
		assert.True(t, shouldExit)
		assert.Nil(t, config)
		assert.Contains(t, out.String(), "Usage:")
	})

	t.Run("invalid log format", func(t *testing.T) {
		var out bytes.Buffer
		_, _, err := Parse([]string{"-log-format", "xml", "vars.hcl"}, &out)
		require.Error(t, err)
		exitErr, ok := err.(*ExitError)
		require.True(t, ok)
		assert.Equal(t, 2, exitErr.Code)
	})

	t.Run("invalid log level", func(t *testing.T) {
		var out bytes.Buffer
		_, _, err := Parse([]string{"-log-level", "loud", "vars.hcl"}, &out)
		require.Error(t, err)
	})
}
