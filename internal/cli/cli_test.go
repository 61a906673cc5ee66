package cli_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/geoscript/internal/cli"
)

func TestParseDefaults(t *testing.T) {
	var buf bytes.Buffer
	cfg, shouldExit, err := cli.Parse(nil, &buf)
	require.NoError(t, err)
	assert.False(t, shouldExit)
	assert.Equal(t, "", cfg.ManifestPath)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestParseFlags(t *testing.T) {
	var buf bytes.Buffer
	cfg, _, err := cli.Parse([]string{
		"-manifests", "/etc/geoscript/kinds",
		"-log-format", "JSON",
		"-log-level", "Debug",
	}, &buf)
	require.NoError(t, err)
	assert.Equal(t, "/etc/geoscript/kinds", cfg.ManifestPath)
	assert.Equal(t, "json", cfg.LogFormat, "format is lowercased")
	assert.Equal(t, "debug", cfg.LogLevel, "level is lowercased")
}

func TestParseHelp(t *testing.T) {
	var buf bytes.Buffer
	cfg, shouldExit, err := cli.Parse([]string{"-h"}, &buf)
	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, cfg)
	assert.Contains(t, buf.String(), "geoscript")
}

func TestParseErrors(t *testing.T) {
	t.Run("unknown flag", func(t *testing.T) {
		var buf bytes.Buffer
		_, _, err := cli.Parse([]string{"-frobnicate"}, &buf)
		var exitErr *cli.ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 2, exitErr.Code)
	})

	t.Run("invalid log level", func(t *testing.T) {
		var buf bytes.Buffer
		_, _, err := cli.Parse([]string{"-log-level", "loud"}, &buf)
		var exitErr *cli.ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 2, exitErr.Code)
		assert.Contains(t, exitErr.Message, "loud")
	})

	t.Run("invalid log format", func(t *testing.T) {
		var buf bytes.Buffer
		_, _, err := cli.Parse([]string{"-log-format", "yaml"}, &buf)
		require.Error(t, err)
	})
}
