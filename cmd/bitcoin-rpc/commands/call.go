package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/genyleap/bitcoin-rpc/client/bitcoind"

	"github.com/spf13/cobra"
)

type CallHandler func(ctx context.Context, method string, args []string) (json.RawMessage, error)

func NewCmdCall(w io.Writer, rf *RootFlags) *cobra.Command {
	h := func(ctx context.Context, method string, args []string) (json.RawMessage, error) {
		op, ok := bitcoind.LookupOperation(method)
		if !ok {
			return nil, fmt.Errorf("unknown method %q, see the help command for the list", method)
		}

		params, err := op.CoerceArgs(args)
		if err != nil {
			return nil, err
		}

		client, err := rf.buildClient()
		if err != nil {
			return nil, err
		}

		return client.Call(ctx, op.Method, params)
	}
	return BuildCmdCall(w, h)
}

func BuildCmdCall(w io.Writer, handler CallHandler) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "call METHOD [ARGS...]",
		Short: "Invoke any RPC method on the node",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := handler(cmd.Context(), args[0], args[1:])
			if err != nil {
				return err
			}
			return printResult(w, result)
		},
	}
	return cmd
}

// printResult writes the raw result bytes, indented when they hold a JSON
// document. A null or absent result prints as null.
func printResult(w io.Writer, result json.RawMessage) error {
	if len(result) == 0 {
		_, err := fmt.Fprintln(w, "null")
		return err
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, result, "", "  "); err != nil {
		_, werr := fmt.Fprintln(w, string(result))
		return werr
	}
	_, err := fmt.Fprintln(w, buf.String())
	return err
}
