package bitcoind_test

import (
	"encoding/json"
	"testing"

	"github.com/genyleap/bitcoin-rpc/client/bitcoind"
	"github.com/genyleap/bitcoin-rpc/jsonrpc"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	t.Run("Every entry is registered under its own method name", testEveryEntryIsRegisteredUnderItsOwnMethodName)
	t.Run("Required parameters come before optional ones", testRequiredParametersComeBeforeOptionalOnes)
	t.Run("Looking up an unknown method fails", testLookingUpUnknownMethodFails)
}

func testEveryEntryIsRegisteredUnderItsOwnMethodName(t *testing.T) {
	for name, op := range bitcoind.Catalog {
		assert.Equal(t, name, op.Method)
	}
}

func testRequiredParametersComeBeforeOptionalOnes(t *testing.T) {
	for name, op := range bitcoind.Catalog {
		sawOptional := false
		for _, p := range op.Params {
			if !p.Required {
				sawOptional = true
				continue
			}
			assert.False(t, sawOptional,
				"method %s declares required parameter %s after an optional one", name, p.Name)
		}
	}
}

func testLookingUpUnknownMethodFails(t *testing.T) {
	// when
	_, ok := bitcoind.LookupOperation("getblochcount")

	// then
	assert.False(t, ok)
}

func TestCoerceArgs(t *testing.T) {
	t.Run("Arguments are coerced to the declared shapes", testArgumentsAreCoercedToDeclaredShapes)
	t.Run("Coercing invalid arguments fails", testCoercingInvalidArgumentsFails)
}

func testArgumentsAreCoercedToDeclaredShapes(t *testing.T) {
	tcs := []struct {
		name     string
		method   string
		args     []string
		expected jsonrpc.Params
	}{
		{
			name:     "without arguments",
			method:   "getblockcount",
			args:     nil,
			expected: jsonrpc.Params{},
		},
		{
			name:     "with an integer argument",
			method:   "getblockhash",
			args:     []string{"790000"},
			expected: jsonrpc.Params{int64(790000)},
		},
		{
			name:     "with a float argument",
			method:   "settxfee",
			args:     []string{"0.0001"},
			expected: jsonrpc.Params{0.0001},
		},
		{
			name:     "with a boolean argument",
			method:   "setnetworkactive",
			args:     []string{"true"},
			expected: jsonrpc.Params{true},
		},
		{
			name:     "with a JSON array argument",
			method:   "gettxoutproof",
			args:     []string{`["txid1","txid2"]`},
			expected: jsonrpc.Params{json.RawMessage(`["txid1","txid2"]`)},
		},
		{
			name:     "with trailing optional arguments left off",
			method:   "getblock",
			args:     []string{"hash"},
			expected: jsonrpc.Params{"hash"},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// given
			op, ok := bitcoind.LookupOperation(tc.method)
			require.True(t, ok)

			// when
			params, err := op.CoerceArgs(tc.args)

			// then
			require.NoError(t, err)
			assert.Equal(t, tc.expected, params)
		})
	}
}

func testCoercingInvalidArgumentsFails(t *testing.T) {
	tcs := []struct {
		name   string
		method string
		args   []string
	}{
		{
			name:   "with a required argument missing",
			method: "getblockhash",
			args:   nil,
		},
		{
			name:   "with too many arguments",
			method: "getblockcount",
			args:   []string{"extra"},
		},
		{
			name:   "with a malformed integer",
			method: "getblockhash",
			args:   []string{"seven"},
		},
		{
			name:   "with a malformed boolean",
			method: "setnetworkactive",
			args:   []string{"yes please"},
		},
		{
			name:   "with malformed JSON",
			method: "gettxoutproof",
			args:   []string{`["txid1",`},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// given
			op, ok := bitcoind.LookupOperation(tc.method)
			require.True(t, ok)

			// when
			params, err := op.CoerceArgs(tc.args)

			// then
			require.Error(t, err)
			assert.Nil(t, params)
		})
	}
}
