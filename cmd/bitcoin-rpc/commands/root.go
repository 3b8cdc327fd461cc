package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/genyleap/bitcoin-rpc/client/bitcoind"
	"github.com/genyleap/bitcoin-rpc/config"
	"github.com/genyleap/bitcoin-rpc/config/encoding"
	"github.com/genyleap/bitcoin-rpc/logging"
	"github.com/genyleap/bitcoin-rpc/metrics"

	"github.com/spf13/cobra"
)

// RootFlags are shared by every sub-command. Flags given on the command
// line override the values loaded from the configuration file.
type RootFlags struct {
	Home     string
	Address  string
	User     string
	Password string
	Timeout  time.Duration
	Level    string
}

func NewCmdRoot(w io.Writer) *cobra.Command {
	rf := &RootFlags{}

	cmd := &cobra.Command{
		Use:           "bitcoin-rpc",
		Short:         "Talk to a bitcoind node over JSON-RPC",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&rf.Home,
		"home",
		defaultHome(),
		"Directory holding the configuration file",
	)
	cmd.PersistentFlags().StringVar(&rf.Address,
		"address",
		"",
		"Address of the bitcoind RPC server",
	)
	cmd.PersistentFlags().StringVar(&rf.User,
		"user",
		"",
		"RPC username",
	)
	cmd.PersistentFlags().StringVar(&rf.Password,
		"password",
		"",
		"RPC password",
	)
	cmd.PersistentFlags().DurationVar(&rf.Timeout,
		"timeout",
		0,
		"Maximum duration of a single RPC exchange, e.g. 30s",
	)
	cmd.PersistentFlags().StringVar(&rf.Level,
		"level",
		"",
		"Log level (debug, info, warn, error)",
	)

	cmd.AddCommand(NewCmdInit(w, rf))
	cmd.AddCommand(NewCmdCall(w, rf))
	cmd.AddCommand(NewCmdInfo(w, rf))
	cmd.AddCommand(NewCmdVersion(w))

	return cmd
}

func defaultHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".bitcoin-rpc")
}

// loadConfig reads the configuration file under the home directory when one
// exists, then layers the command line flags on top.
func (rf *RootFlags) loadConfig() (config.Config, error) {
	cfg := config.NewDefaultConfig()
	if loaded, err := config.Read(rf.Home); err == nil {
		cfg = *loaded
	} else if !os.IsNotExist(err) {
		return config.Config{}, fmt.Errorf("couldn't read the configuration file: %w", err)
	}

	if rf.Address != "" {
		cfg.Node.Address = rf.Address
	}
	if rf.User != "" {
		cfg.Node.User = rf.User
	}
	if rf.Password != "" {
		cfg.Node.Password = rf.Password
	}
	if rf.Timeout > 0 {
		cfg.Node.Timeout = encoding.Duration{Duration: rf.Timeout}
	}
	if rf.Level != "" {
		level, err := logging.ParseLevel(rf.Level)
		if err != nil {
			return config.Config{}, err
		}
		cfg.Level = encoding.LogLevel{Level: level}
		cfg.Node.Level = encoding.LogLevel{Level: level}
	}

	return cfg, nil
}

// buildClient assembles a node client from the effective configuration.
func (rf *RootFlags) buildClient() (*bitcoind.Client, error) {
	cfg, err := rf.loadConfig()
	if err != nil {
		return nil, err
	}

	log := logging.NewLoggerFromEnv(os.Getenv("BITCOIN_RPC_ENV"))
	log.SetLevel(cfg.Level.Get())

	var opts []bitcoind.Option
	if cfg.Metrics.Enabled {
		observer, err := metrics.NewCallObserver(nil)
		if err != nil {
			return nil, err
		}
		opts = append(opts, bitcoind.WithObserver(observer))
		metrics.Start(cfg.Metrics)
	}

	return bitcoind.New(log, cfg.Node, opts...)
}
