package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/genyleap/bitcoin-rpc/client/bitcoind"
	"github.com/genyleap/bitcoin-rpc/config/encoding"
	"github.com/genyleap/bitcoin-rpc/logging"
	"github.com/genyleap/bitcoin-rpc/metrics"

	"github.com/BurntSushi/toml"
)

// Config ties together the configuration of every package.
type Config struct {
	Level encoding.LogLevel `long:"log-level"`

	Node    bitcoind.Config `group:"Node" namespace:"node"`
	Metrics metrics.Config  `group:"Metrics" namespace:"metrics"`
}

// NewDefaultConfig returns the defaults for every package, pointed at a
// local mainnet node.
func NewDefaultConfig() Config {
	return Config{
		Level:   encoding.LogLevel{Level: logging.InfoLevel},
		Node:    bitcoind.NewDefaultConfig(),
		Metrics: metrics.NewDefaultConfig(),
	}
}

// Read loads the configuration file from the given root path, on top of the
// defaults.
func Read(rootPath string) (*Config, error) {
	path := filepath.Join(rootPath, configFileName)
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := NewDefaultConfig()
	if _, err := toml.Decode(string(buf), &cfg); err != nil {
		return nil, fmt.Errorf("couldn't decode the configuration file: %w", err)
	}
	return &cfg, nil
}

// Write saves the given configuration under the given root path, creating
// the directory when needed. It returns the path of the written file.
func Write(rootPath string, cfg Config) (string, error) {
	if err := os.MkdirAll(rootPath, 0o700); err != nil {
		return "", err
	}
	path := filepath.Join(rootPath, configFileName)
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return "", fmt.Errorf("couldn't encode the configuration file: %w", err)
	}
	return path, nil
}
