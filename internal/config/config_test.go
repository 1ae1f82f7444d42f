package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rileyhilliard/icp/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, CurrentConfigVersion, cfg.Version)
	assert.Equal(t, LocalNetwork, cfg.DefaultNetwork)
	assert.Equal(t, LocalNetworkURL, cfg.Networks[LocalNetwork].URL)
	assert.Equal(t, MainNetworkURL, cfg.Networks[MainNetwork].URL)
	assert.NotNil(t, cfg.Environments)
	assert.NotNil(t, cfg.Canisters)
	require.NoError(t, Validate(cfg))
}

func TestDefaultGlobalConfig(t *testing.T) {
	cfg := DefaultGlobalConfig()

	assert.Equal(t, CurrentGlobalConfigVersion, cfg.Version)
	assert.Equal(t, MainNetworkURL, cfg.Network.URL)
	assert.Equal(t, "auto", cfg.Output.Color)
	require.NoError(t, ValidateGlobal(cfg))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "icp.yaml", `
version: 1
default_network: staging-net
networks:
  staging-net:
    url: https://staging.example.com
environments:
  prod:
    network: ic
canisters:
  backend:
    ids:
      local: rrkah-fqaaa-aaaaa-aaaaq-cai
      ic: ryjl3-tyaaa-aaaaa-aaaba-cai
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, "staging-net", cfg.DefaultNetwork)
	assert.Equal(t, "https://staging.example.com", cfg.Networks["staging-net"].URL)
	assert.Equal(t, LocalNetworkURL, cfg.Networks[LocalNetwork].URL, "built-in networks are merged in")
	assert.Equal(t, MainNetworkURL, cfg.Networks[MainNetwork].URL)
	assert.Equal(t, "ic", cfg.Environments["prod"].Network)
	assert.Equal(t, "ryjl3-tyaaa-aaaaa-aaaba-cai", cfg.Canisters["backend"].IDs["ic"])
	require.NoError(t, Validate(cfg))
}

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "icp.yaml", "canisters: {}\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, CurrentConfigVersion, cfg.Version)
	assert.Equal(t, LocalNetwork, cfg.DefaultNetwork)
	assert.Len(t, cfg.Networks, 2)
	assert.NotNil(t, cfg.Environments)
	assert.NotNil(t, cfg.Canisters)
}

func TestLoad_OverridesBuiltinNetwork(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "icp.yaml", `
networks:
  local:
    url: http://localhost:8080
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", cfg.Networks[LocalNetwork].URL)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))

	bad := writeFile(t, dir, "bad.yaml", "networks: [unclosed\n")
	_, err = Load(bad)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestLoadGlobalFrom(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := LoadGlobalFrom(filepath.Join(t.TempDir(), "none.yaml"))
		require.NoError(t, err)
		assert.Equal(t, DefaultGlobalConfig(), cfg)
	})

	t.Run("empty path yields defaults", func(t *testing.T) {
		cfg, err := LoadGlobalFrom("")
		require.NoError(t, err)
		assert.Equal(t, MainNetworkURL, cfg.Network.URL)
	})

	t.Run("file values", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "config.yaml", `
network:
  url: https://boundary.example.com
output:
  color: never
`)
		cfg, err := LoadGlobalFrom(path)
		require.NoError(t, err)
		assert.Equal(t, "https://boundary.example.com", cfg.Network.URL)
		assert.Equal(t, "never", cfg.Output.Color)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "config.yaml", "network:\n  url: https://file.example.com\n")
		t.Setenv("ICP_NETWORK_URL", "https://env.example.com")

		cfg, err := LoadGlobalFrom(path)
		require.NoError(t, err)
		assert.Equal(t, "https://env.example.com", cfg.Network.URL)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "config.yaml", "network: [oops\n")
		_, err := LoadGlobalFrom(path)
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrConfig))
	})
}

func TestLoadGlobal_UsesHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeFile(t, home, filepath.Join(GlobalConfigDir, GlobalConfigFile), "output:\n  color: always\n")

	assert.Equal(t, filepath.Join(home, GlobalConfigDir, GlobalConfigFile), GlobalConfigPath())

	cfg, err := LoadGlobal()
	require.NoError(t, err)
	assert.Equal(t, "always", cfg.Output.Color)
}
