package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lambda/eval"
)

func writeConfig(t *testing.T, contents string) string {
	path := filepath.Join(t.TempDir(), "lambdarc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
prompt: "λ> "
history_file: /tmp/lambda_history
max_depth: 200
no_color: true
`)
	cfg, err := LoadConfig(path, true)
	require.NoError(t, err)
	assert.Equal(t, Config{
		Prompt:      "λ> ",
		HistoryFile: "/tmp/lambda_history",
		MaxDepth:    200,
		CacheSize:   eval.DefaultCacheSize,
		NoColor:     true,
	}, cfg)
}

func TestLoadConfigMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yaml")
	cfg, err := LoadConfig(missing, false)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	_, err = LoadConfig(missing, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config")

	cfg, err = LoadConfig("", true)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigInvalid(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "max_depth: [1, 2"), true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")

	_, err = LoadConfig(writeConfig(t, "max_depth: -4"), true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_depth must be between 1 and 100000, got -4")

	_, err = LoadConfig(writeConfig(t, "max_depth: 10000000"), true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_depth must be between 1 and 100000, got 10000000")

	cfg, err := LoadConfig(writeConfig(t, "max_depth: 100000"), true)
	require.NoError(t, err)
	assert.Equal(t, eval.MaxDepthLimit, cfg.MaxDepth)
}

func TestConfigFileFeedsSession(t *testing.T) {
	path := writeConfig(t, "max_depth: 3\n")
	var stdout, stderr bytes.Buffer
	app := newApp(&stdout, &stderr)
	err := app.Run([]string{"lambda", "--config", path, "--no-color", "run", "testdata/functions.lambda"})
	require.Error(t, err)
	assert.Contains(t, stderr.String(), "RecursionLimitExceeded")
}
