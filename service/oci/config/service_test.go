package ociconfig

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := ConfigPath("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".oci", "config"), path)

	path, err = ConfigPath("/etc/oci/config")
	require.NoError(t, err)
	assert.Equal(t, "/etc/oci/config", path)
}

func TestGetConfigurationProviderMissingFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := NewService().GetConfigurationProvider(filepath.Join(t.TempDir(), "missing"), "")
	assert.Error(t, err)
}
