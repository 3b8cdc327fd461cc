package bitcoind

import (
	"context"
	"encoding/json"
)

// Rawtransactions RPCs.

// TransactionInput references an output to be spent by a transaction under
// construction.
type TransactionInput struct {
	TxID     string  `json:"txid"`
	Vout     uint32  `json:"vout"`
	Sequence *uint32 `json:"sequence,omitempty"`
}

// AnalyzePsbt analyzes and provides information about the current status of
// a partially signed bitcoin transaction and its inputs.
func (c *Client) AnalyzePsbt(ctx context.Context, psbt string) (json.RawMessage, error) {
	return c.Call(ctx, "analyzepsbt", buildParams(arg(psbt)))
}

// CombinePsbt combines multiple partially signed bitcoin transactions into
// one.
func (c *Client) CombinePsbt(ctx context.Context, psbts []string) (json.RawMessage, error) {
	return c.Call(ctx, "combinepsbt", buildParams(arg(psbts)))
}

// CombineRawTransaction combines multiple partially signed raw transactions
// into one.
func (c *Client) CombineRawTransaction(ctx context.Context, hexStrings []string) (json.RawMessage, error) {
	return c.Call(ctx, "combinerawtransaction", buildParams(arg(hexStrings)))
}

// ConvertToPsbt converts a raw transaction to a PSBT.
func (c *Client) ConvertToPsbt(ctx context.Context, hexString string, permitSigData, isWitness bool) (json.RawMessage, error) {
	return c.Call(ctx, "converttopsbt", buildParams(
		arg(hexString),
		opt(permitSigData, permitSigData),
		opt(isWitness, !isWitness),
	))
}

// CreatePsbt creates a PSBT spending the given inputs into the given
// address-to-amount outputs.
func (c *Client) CreatePsbt(ctx context.Context, inputs []TransactionInput, outputs map[string]float64) (json.RawMessage, error) {
	return c.Call(ctx, "createpsbt", buildParams(arg(inputs), arg(outputs)))
}

// CreateRawTransaction creates an unsigned serialized transaction spending
// the given inputs into the given address-to-amount outputs.
func (c *Client) CreateRawTransaction(ctx context.Context, inputs []TransactionInput, outputs map[string]float64) (json.RawMessage, error) {
	return c.Call(ctx, "createrawtransaction", buildParams(arg(inputs), arg(outputs)))
}

// DecodePsbt returns a JSON object representing the given serialized PSBT.
func (c *Client) DecodePsbt(ctx context.Context, psbt string) (json.RawMessage, error) {
	return c.Call(ctx, "decodepsbt", buildParams(arg(psbt)))
}

// DecodeRawTransaction returns a JSON object representing the given
// serialized transaction.
func (c *Client) DecodeRawTransaction(ctx context.Context, hexString string, isWitness bool) (json.RawMessage, error) {
	return c.Call(ctx, "decoderawtransaction", buildParams(arg(hexString), opt(isWitness, !isWitness)))
}

// DecodeScript decodes the given hex-encoded script.
func (c *Client) DecodeScript(ctx context.Context, hexString string) (json.RawMessage, error) {
	return c.Call(ctx, "decodescript", buildParams(arg(hexString)))
}

// FinalizePsbt finalizes the inputs of a PSBT, producing a
// network-serialized transaction when extract is set and all inputs are
// complete.
func (c *Client) FinalizePsbt(ctx context.Context, psbt string, extract bool) (json.RawMessage, error) {
	return c.Call(ctx, "finalizepsbt", buildParams(arg(psbt), opt(extract, !extract)))
}

// FundRawTransaction selects inputs and adds a change output so the given
// transaction covers its outputs and fee. options is the raw funding
// options object; leave it empty for the node's defaults.
func (c *Client) FundRawTransaction(ctx context.Context, hexString string, options json.RawMessage) (json.RawMessage, error) {
	return c.Call(ctx, "fundrawtransaction", buildParams(arg(hexString), opt(options, len(options) > 0)))
}

// GetRawTransaction returns the serialized transaction, or a JSON object
// describing it when verbose is set. Without -txindex on the node, only
// mempool transactions can be looked up.
func (c *Client) GetRawTransaction(ctx context.Context, txID string, verbose bool) (json.RawMessage, error) {
	return c.Call(ctx, "getrawtransaction", buildParams(arg(txID), opt(verbose, verbose)))
}

// JoinPsbts joins multiple distinct PSBTs into one with inputs and outputs
// from all of them.
func (c *Client) JoinPsbts(ctx context.Context, psbts []string) (json.RawMessage, error) {
	return c.Call(ctx, "joinpsbts", buildParams(arg(psbts)))
}

// SendRawTransaction submits the given serialized transaction to the local
// node and network.
func (c *Client) SendRawTransaction(ctx context.Context, hexString string, allowHighFees bool) (json.RawMessage, error) {
	return c.Call(ctx, "sendrawtransaction", buildParams(arg(hexString), opt(allowHighFees, allowHighFees)))
}

// SignRawTransactionWithKey signs inputs of the given transaction with the
// given private keys. prevTxs is the raw array of previous-output
// descriptors needed for outputs the node doesn't know about.
func (c *Client) SignRawTransactionWithKey(ctx context.Context, hexString string, privKeys []string, prevTxs json.RawMessage) (json.RawMessage, error) {
	return c.Call(ctx, "signrawtransactionwithkey", buildParams(
		arg(hexString),
		arg(privKeys),
		opt(prevTxs, len(prevTxs) > 0),
	))
}

// TestMempoolAccept checks whether the given raw transactions would be
// accepted by the mempool, without submitting them.
func (c *Client) TestMempoolAccept(ctx context.Context, rawTxs []string, allowHighFees bool) (json.RawMessage, error) {
	return c.Call(ctx, "testmempoolaccept", buildParams(arg(rawTxs), opt(allowHighFees, allowHighFees)))
}

// UtxoUpdatePsbt updates a PSBT with witness UTXOs retrieved from the UTXO
// set or the mempool.
func (c *Client) UtxoUpdatePsbt(ctx context.Context, psbt string, descriptors json.RawMessage) (json.RawMessage, error) {
	return c.Call(ctx, "utxoupdatepsbt", buildParams(arg(psbt), opt(descriptors, len(descriptors) > 0)))
}
