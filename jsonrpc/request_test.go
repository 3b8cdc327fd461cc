package jsonrpc_test

import (
	"encoding/json"
	"testing"

	"github.com/genyleap/bitcoin-rpc/jsonrpc"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequest(t *testing.T) {
	t.Run("Building a request normalises nil params", testBuildingRequestNormalisesNilParams)
	t.Run("Encoding a request keeps the envelope shape", testEncodingRequestKeepsEnvelopeShape)
	t.Run("Checking an invalid request fails", testCheckingInvalidRequestFails)
}

func testBuildingRequestNormalisesNilParams(t *testing.T) {
	// when
	request := jsonrpc.NewRequest("Genyleap-Bitcoin-RPC", "getblockcount", nil)

	// then
	require.NotNil(t, request.Params)
	assert.Len(t, request.Params, 0)
	assert.NoError(t, request.Check())
}

func testEncodingRequestKeepsEnvelopeShape(t *testing.T) {
	tcs := []struct {
		name     string
		method   string
		params   jsonrpc.Params
		expected string
	}{
		{
			name:     "without parameters",
			method:   "getblockcount",
			params:   nil,
			expected: `{"jsonrpc":"1.0","id":"Genyleap-Bitcoin-RPC","method":"getblockcount","params":[]}`,
		},
		{
			name:     "with mixed parameters",
			method:   "getblock",
			params:   jsonrpc.Params{"00000000839a8e6886ab5951d76f411475428afc90947ee320161bbf18eb6048", 2},
			expected: `{"jsonrpc":"1.0","id":"Genyleap-Bitcoin-RPC","method":"getblock","params":["00000000839a8e6886ab5951d76f411475428afc90947ee320161bbf18eb6048",2]}`,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// given
			request := jsonrpc.NewRequest("Genyleap-Bitcoin-RPC", tc.method, tc.params)

			// when
			encoded, err := json.Marshal(request)

			// then
			require.NoError(t, err)
			assert.Equal(t, tc.expected, string(encoded))
		})
	}
}

func testCheckingInvalidRequestFails(t *testing.T) {
	tcs := []struct {
		name          string
		request       *jsonrpc.Request
		expectedError error
	}{
		{
			name: "with an unsupported version",
			request: &jsonrpc.Request{
				Version: "2.0",
				ID:      "Genyleap-Bitcoin-RPC",
				Method:  "getblockcount",
			},
			expectedError: jsonrpc.ErrOnlySupportJSONRPC1,
		},
		{
			name: "without an ID",
			request: &jsonrpc.Request{
				Version: jsonrpc.VERSION1,
				Method:  "getblockcount",
			},
			expectedError: jsonrpc.ErrIDIsRequired,
		},
		{
			name: "without a method",
			request: &jsonrpc.Request{
				Version: jsonrpc.VERSION1,
				ID:      "Genyleap-Bitcoin-RPC",
			},
			expectedError: jsonrpc.ErrMethodIsRequired,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// when
			err := tc.request.Check()

			// then
			require.ErrorIs(t, err, tc.expectedError)
		})
	}
}
