package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/genyleap/bitcoin-rpc/config"

	"github.com/spf13/cobra"
)

var errConfigAlreadyExists = fmt.Errorf("a configuration file already exists, use --force to overwrite it")

type InitHandler func(home string, f *InitFlags) (*InitResponse, error)

func NewCmdInit(w io.Writer, rf *RootFlags) *cobra.Command {
	h := func(home string, f *InitFlags) (*InitResponse, error) {
		return Init(home, f)
	}
	return BuildCmdInit(w, h, rf)
}

func BuildCmdInit(w io.Writer, handler InitHandler, rf *RootFlags) *cobra.Command {
	f := &InitFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the configuration file with defaults",
		RunE: func(_ *cobra.Command, _ []string) error {
			resp, err := handler(rf.Home, f)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "Configuration created at: %s\n", resp.ConfigFilePath)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&f.Force,
		"force", "f",
		false,
		"Overwrite an existing configuration file",
	)

	return cmd
}

type InitFlags struct {
	Force bool
}

type InitResponse struct {
	ConfigFilePath string `json:"configFilePath"`
}

func Init(home string, f *InitFlags) (*InitResponse, error) {
	path := filepath.Join(home, "config.toml")
	if _, err := os.Stat(path); err == nil && !f.Force {
		return nil, errConfigAlreadyExists
	}

	written, err := config.Write(home, config.NewDefaultConfig())
	if err != nil {
		return nil, fmt.Errorf("couldn't write the configuration file: %w", err)
	}

	return &InitResponse{ConfigFilePath: written}, nil
}
