package bitcoind

import (
	"context"
	"encoding/json"
)

// Mining RPCs.

// GetBlockTemplate returns data needed to construct a block to work on.
// templateRequest is the raw template request object; leave it empty for
// the node's defaults.
func (c *Client) GetBlockTemplate(ctx context.Context, templateRequest json.RawMessage) (json.RawMessage, error) {
	return c.Call(ctx, "getblocktemplate", buildParams(opt(templateRequest, len(templateRequest) > 0)))
}

// GetMiningInfo returns mining-related information.
func (c *Client) GetMiningInfo(ctx context.Context) (json.RawMessage, error) {
	return c.Call(ctx, "getmininginfo", nil)
}

// GetNetworkHashPS estimates the network hashes per second over the last
// nBlocks blocks (120 by default), at the given height (-1 for the tip).
func (c *Client) GetNetworkHashPS(ctx context.Context, nBlocks, height int64) (json.RawMessage, error) {
	return c.Call(ctx, "getnetworkhashps", buildParams(
		opt(nBlocks, nBlocks != 120),
		opt(height, height != -1),
	))
}

// PrioritiseTransaction accepts the given transaction into mined blocks at
// a higher (or lower) priority by adjusting its apparent fee.
func (c *Client) PrioritiseTransaction(ctx context.Context, txID string, feeDelta float64) (json.RawMessage, error) {
	return c.Call(ctx, "prioritisetransaction", buildParams(arg(txID), arg(feeDelta)))
}

// SubmitBlock attempts to submit a new block to the network. parameters is
// ignored by current nodes but kept for protocol compatibility.
func (c *Client) SubmitBlock(ctx context.Context, hexData, parameters string) (json.RawMessage, error) {
	return c.Call(ctx, "submitblock", buildParams(arg(hexData), opt(parameters, len(parameters) > 0)))
}

// SubmitHeader submits a block header for validation and, when valid,
// acceptance as the tip of the header chain.
func (c *Client) SubmitHeader(ctx context.Context, hexHeader string) (json.RawMessage, error) {
	return c.Call(ctx, "submitheader", buildParams(arg(hexHeader)))
}
