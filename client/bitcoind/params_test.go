package bitcoind

import (
	"testing"

	"github.com/genyleap/bitcoin-rpc/jsonrpc"

	"github.com/stretchr/testify/assert"
)

func TestBuildParams(t *testing.T) {
	t.Run("Unset arguments are dropped from the tail", testUnsetArgumentsAreDroppedFromTail)
	t.Run("A set argument forces earlier defaults onto the wire", testSetArgumentForcesEarlierDefaultsOntoWire)
	t.Run("Explicit zero values survive", testExplicitZeroValuesSurvive)
}

func testUnsetArgumentsAreDroppedFromTail(t *testing.T) {
	tcs := []struct {
		name     string
		params   []param
		expected jsonrpc.Params
	}{
		{
			name:     "with no arguments",
			params:   nil,
			expected: jsonrpc.Params{},
		},
		{
			name: "with only required arguments",
			params: []param{
				arg("tb1qaddress"),
				arg(1.5),
			},
			expected: jsonrpc.Params{"tb1qaddress", 1.5},
		},
		{
			name: "with every optional argument unset",
			params: []param{
				arg("txid"),
				opt("label", false),
				opt(true, false),
			},
			expected: jsonrpc.Params{"txid"},
		},
		{
			name: "with a trailing optional argument set",
			params: []param{
				arg("txid"),
				opt("label", false),
				opt(int64(6), true),
				opt(false, false),
			},
			expected: jsonrpc.Params{"txid", "label", int64(6)},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// when
			got := buildParams(tc.params...)

			// then
			assert.Equal(t, tc.expected, got)
		})
	}
}

func testSetArgumentForcesEarlierDefaultsOntoWire(t *testing.T) {
	// given an unset argument sandwiched between set ones
	params := []param{
		arg("address"),
		opt("", false),
		opt(true, true),
	}

	// when
	got := buildParams(params...)

	// then the default is encoded, not skipped, because position carries
	// meaning
	assert.Equal(t, jsonrpc.Params{"address", "", true}, got)
}

func testExplicitZeroValuesSurvive(t *testing.T) {
	// given a confirmation count of 0, which is a real argument
	params := []param{
		arg("*"),
		opt(int64(0), true),
	}

	// when
	got := buildParams(params...)

	// then
	assert.Equal(t, jsonrpc.Params{"*", int64(0)}, got)
}
