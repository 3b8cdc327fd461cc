package cmd_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	cmd "github.com/genyleap/bitcoin-rpc/cmd/bitcoin-rpc/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfoCommand(t *testing.T) {
	t.Run("The chain summary is printed line by line", testChainSummaryIsPrintedLineByLine)
	t.Run("A handler failure surfaces as a command error", testInfoHandlerFailureSurfacesAsCommandError)
}

func testChainSummaryIsPrintedLineByLine(t *testing.T) {
	// given
	out := &bytes.Buffer{}
	handler := func(_ context.Context) (*cmd.ChainInfo, error) {
		return &cmd.ChainInfo{
			Chain:                "main",
			Blocks:               823456,
			Headers:              823456,
			BestBlockHash:        "00000000000000000002f5e87a2f9f6dd1f0e2b2c3e2b7f6b0f35c21a9f3b7aa",
			Difficulty:           72006146478567.1,
			VerificationProgress: 0.9999,
		}, nil
	}
	c := cmd.BuildCmdInfo(out, handler)

	// when
	err := c.Execute()

	// then
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Chain: main\n")
	assert.Contains(t, out.String(), "Blocks: 823456\n")
	assert.Contains(t, out.String(), "Verification progress: 99.99%\n")
}

func testInfoHandlerFailureSurfacesAsCommandError(t *testing.T) {
	// given
	out := &bytes.Buffer{}
	handlerErr := errors.New("the node is unreachable")
	handler := func(_ context.Context) (*cmd.ChainInfo, error) {
		return nil, handlerErr
	}
	c := cmd.BuildCmdInfo(out, handler)
	c.SilenceUsage = true
	c.SilenceErrors = true

	// when
	err := c.Execute()

	// then
	require.ErrorIs(t, err, handlerErr)
	assert.Empty(t, out.String())
}
