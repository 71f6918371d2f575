package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stegovault/pkg/envelope"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope", "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, envelope.DefaultIterations, cfg.KDFIterations)
	assert.Equal(t, "_stego", cfg.SuffixStego)
	assert.Empty(t, cfg.OutputDir)
}

func TestLoadReadsValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"kdf_iterations: 250000\noutput_dir: /tmp/stego\nsuffix_stego: _hidden\n"), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 250000, cfg.KDFIterations)
	assert.Equal(t, "/tmp/stego", cfg.OutputDir)
	assert.Equal(t, "_hidden", cfg.SuffixStego)
}

func TestLoadClampsLowIterations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("kdf_iterations: 500\n"), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, envelope.MinIterations, cfg.KDFIterations)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("kdf_iterations: [not a number\n"), 0600))

	_, err := Load(path)
	assert.Error(t, err)
}
