package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// Set at build time through -ldflags.
var (
	Version     = "v0.1.0+dev"
	VersionHash = "unknown"
)

func NewCmdVersion(w io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show the software version",
		RunE: func(_ *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(w, "bitcoin-rpc %s (%s)\n", Version, VersionHash)
			return err
		},
	}
	return cmd
}
