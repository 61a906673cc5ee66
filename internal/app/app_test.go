package app_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/geoscript/internal/app"
)

func TestNewConfig(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cfg, err := app.NewConfig(app.Config{LogFormat: "json", LogLevel: "debug"})
		require.NoError(t, err)
		assert.Equal(t, "json", cfg.LogFormat)
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := app.NewConfig(app.Config{LogFormat: "xml", LogLevel: "info"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "xml")
	})

	t.Run("invalid level", func(t *testing.T) {
		_, err := app.NewConfig(app.Config{LogFormat: "text", LogLevel: "verbose"})
		require.Error(t, err)
	})
}

func TestAppRun(t *testing.T) {
	cfg, err := app.NewConfig(app.Config{LogFormat: "text", LogLevel: "error"})
	require.NoError(t, err)

	var out, errOut bytes.Buffer
	a := app.NewApp(&out, &errOut, cfg)
	require.NoError(t, a.Run(context.Background()))

	text := out.String()
	assert.Contains(t, text, `graph "displacement"`)
	assert.Contains(t, text, `graph "surface_probe"`)
	assert.Contains(t, text, `graph "[unit] `)
	assert.Contains(t, text, `subgraph`)
	assert.Contains(t, text, `"raycast"`)

	assert.Empty(t, errOut.String(), "nothing above error level is logged")
}

func TestAppRunLogsToErrW(t *testing.T) {
	cfg, err := app.NewConfig(app.Config{LogFormat: "json", LogLevel: "debug"})
	require.NoError(t, err)

	var out, errOut bytes.Buffer
	a := app.NewApp(&out, &errOut, cfg)
	require.NoError(t, a.Run(context.Background()))

	require.NotEmpty(t, errOut.String())
	assert.True(t, strings.HasPrefix(strings.TrimSpace(errOut.String()), "{"), "json logs are structured")
	assert.NotContains(t, out.String(), `"level"`, "logs never leak into the dump stream")
}

func TestAppRunBadManifestPath(t *testing.T) {
	cfg, err := app.NewConfig(app.Config{
		ManifestPath: "/does/not/exist",
		LogFormat:    "text",
		LogLevel:     "error",
	})
	require.NoError(t, err)

	var out, errOut bytes.Buffer
	a := app.NewApp(&out, &errOut, cfg)
	require.Error(t, a.Run(context.Background()))
}
