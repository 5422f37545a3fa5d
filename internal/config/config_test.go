package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "qp_snapshot", cfg.OutputBase)
	assert.Equal(t, []string{".h"}, cfg.HeaderExtensions)
	assert.Equal(t, []string{"QState"}, cfg.AllowedReturnTypes)
	assert.Equal(t, []string{"QEvt const * const"}, cfg.RequiredParamFragments)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"output_base: machine_snapshot\nlog_level: debug\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "machine_snapshot", cfg.OutputBase)
	assert.Equal(t, "debug", cfg.LogLevel)
	// untouched keys keep their defaults
	assert.Equal(t, []string{"QState"}, cfg.AllowedReturnTypes)
}

func TestLoadEmptyAllowListDisablesReturnTypeCheck(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	require.NoError(t, os.WriteFile(path, []byte("allowed_return_types: []\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, cfg.AllowedReturnTypes)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output_base: [\n"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadEmptyOutputBase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output_base: \"\"\n"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}
