package config_test

import (
	"path/filepath"
	"testing"

	"github.com/genyleap/bitcoin-rpc/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	t.Run("The defaults point at a local mainnet node", testDefaultsPointAtLocalMainnetNode)
	t.Run("The configuration survives a write and read cycle", testConfigurationSurvivesWriteAndReadCycle)
	t.Run("Reading a missing configuration file fails", testReadingMissingConfigurationFileFails)
}

func testDefaultsPointAtLocalMainnetNode(t *testing.T) {
	// when
	cfg := config.NewDefaultConfig()

	// then
	assert.Equal(t, "http://127.0.0.1:8332/", cfg.Node.Address)
	assert.Equal(t, "Genyleap-Bitcoin-RPC", cfg.Node.ID)
	assert.False(t, cfg.Metrics.Enabled)
}

func testConfigurationSurvivesWriteAndReadCycle(t *testing.T) {
	// given
	rootPath := t.TempDir()
	cfg := config.NewDefaultConfig()
	cfg.Node.Address = "http://node.example.com:18332/"
	cfg.Node.User = "rpcuser"
	cfg.Node.RateLimit = 25
	cfg.Metrics.Enabled = true

	// when
	path, err := config.Write(rootPath, cfg)

	// then
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(rootPath, "config.toml"), path)

	// when
	loaded, err := config.Read(rootPath)

	// then
	require.NoError(t, err)
	assert.Equal(t, cfg, *loaded)
}

func testReadingMissingConfigurationFileFails(t *testing.T) {
	// when
	loaded, err := config.Read(t.TempDir())

	// then
	require.Error(t, err)
	assert.Nil(t, loaded)
}
