package cmd_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	cmd "github.com/genyleap/bitcoin-rpc/cmd/bitcoin-rpc/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallCommand(t *testing.T) {
	t.Run("Calling a method prints the indented result", testCallingMethodPrintsIndentedResult)
	t.Run("Calling a method passes the arguments along", testCallingMethodPassesArgumentsAlong)
	t.Run("A handler failure surfaces as a command error", testHandlerFailureSurfacesAsCommandError)
	t.Run("Calling without a method fails", testCallingWithoutMethodFails)
}

func testCallingMethodPrintsIndentedResult(t *testing.T) {
	// given
	out := &bytes.Buffer{}
	handler := func(_ context.Context, _ string, _ []string) (json.RawMessage, error) {
		return json.RawMessage(`{"chain":"main","blocks":823456}`), nil
	}
	c := cmd.BuildCmdCall(out, handler)
	c.SetArgs([]string{"getblockchaininfo"})

	// when
	err := c.Execute()

	// then
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"chain\": \"main\",\n  \"blocks\": 823456\n}\n", out.String())
}

func testCallingMethodPassesArgumentsAlong(t *testing.T) {
	// given
	out := &bytes.Buffer{}
	var gotMethod string
	var gotArgs []string
	handler := func(_ context.Context, method string, args []string) (json.RawMessage, error) {
		gotMethod = method
		gotArgs = args
		return json.RawMessage(`null`), nil
	}
	c := cmd.BuildCmdCall(out, handler)
	c.SetArgs([]string{"getblockhash", "790000"})

	// when
	err := c.Execute()

	// then
	require.NoError(t, err)
	assert.Equal(t, "getblockhash", gotMethod)
	assert.Equal(t, []string{"790000"}, gotArgs)
	assert.Equal(t, "null\n", out.String())
}

func testHandlerFailureSurfacesAsCommandError(t *testing.T) {
	// given
	out := &bytes.Buffer{}
	handlerErr := errors.New("the node is unreachable")
	handler := func(_ context.Context, _ string, _ []string) (json.RawMessage, error) {
		return nil, handlerErr
	}
	c := cmd.BuildCmdCall(out, handler)
	c.SetArgs([]string{"getblockcount"})
	c.SilenceUsage = true
	c.SilenceErrors = true

	// when
	err := c.Execute()

	// then
	require.ErrorIs(t, err, handlerErr)
	assert.Empty(t, out.String())
}

func testCallingWithoutMethodFails(t *testing.T) {
	// given
	out := &bytes.Buffer{}
	handler := func(_ context.Context, _ string, _ []string) (json.RawMessage, error) {
		t.Fatal("the handler should not be called")
		return nil, nil
	}
	c := cmd.BuildCmdCall(out, handler)
	c.SetArgs([]string{})
	c.SilenceUsage = true
	c.SilenceErrors = true

	// when
	err := c.Execute()

	// then
	require.Error(t, err)
}
