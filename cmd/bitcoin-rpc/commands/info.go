package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/genyleap/bitcoin-rpc/client/bitcoind"

	"github.com/spf13/cobra"
)

// ChainInfo is the subset of getblockchaininfo shown by the info command.
type ChainInfo struct {
	Chain                string  `json:"chain"`
	Blocks               int64   `json:"blocks"`
	Headers              int64   `json:"headers"`
	BestBlockHash        string  `json:"bestblockhash"`
	Difficulty           float64 `json:"difficulty"`
	VerificationProgress float64 `json:"verificationprogress"`
}

type InfoHandler func(ctx context.Context) (*ChainInfo, error)

func NewCmdInfo(w io.Writer, rf *RootFlags) *cobra.Command {
	h := func(ctx context.Context) (*ChainInfo, error) {
		client, err := rf.buildClient()
		if err != nil {
			return nil, err
		}

		result, err := client.GetBlockchainInfo(ctx)
		if err != nil {
			return nil, err
		}

		info := &ChainInfo{}
		if err := bitcoind.UnmarshalResult(result, info); err != nil {
			return nil, err
		}
		return info, nil
	}
	return BuildCmdInfo(w, h)
}

func BuildCmdInfo(w io.Writer, handler InfoHandler) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show a summary of the node's chain state",
		RunE: func(cmd *cobra.Command, _ []string) error {
			info, err := handler(cmd.Context())
			if err != nil {
				return err
			}
			PrintChainInfo(w, info)
			return nil
		},
	}
	return cmd
}

func PrintChainInfo(w io.Writer, info *ChainInfo) {
	fmt.Fprintf(w, "Chain: %s\n", info.Chain)
	fmt.Fprintf(w, "Blocks: %d\n", info.Blocks)
	fmt.Fprintf(w, "Headers: %d\n", info.Headers)
	fmt.Fprintf(w, "Best block hash: %s\n", info.BestBlockHash)
	fmt.Fprintf(w, "Difficulty: %g\n", info.Difficulty)
	fmt.Fprintf(w, "Verification progress: %.2f%%\n", info.VerificationProgress*100)
}
