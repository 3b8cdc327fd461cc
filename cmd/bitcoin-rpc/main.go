package main

import (
	"os"

	cmd "github.com/genyleap/bitcoin-rpc/cmd/bitcoin-rpc/commands"
)

func main() {
	writer := &cmd.Writer{
		Out: os.Stdout,
		Err: os.Stderr,
	}
	cmd.Execute(writer)
}
