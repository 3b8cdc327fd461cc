package bitcoind

import (
	"context"
	"encoding/json"
)

// Generating RPCs. These only work against nodes in regtest mode.

// GenerateBlock mines a block containing the given raw transactions or
// mempool transaction IDs, paying the reward to the given address or
// descriptor.
func (c *Client) GenerateBlock(ctx context.Context, output string, transactions []string) (json.RawMessage, error) {
	return c.Call(ctx, "generateblock", buildParams(arg(output), arg(transactions)))
}

// GenerateToAddress mines the given number of blocks, paying rewards to the
// given address. maxTries bounds the number of attempts per block, 0 for the
// node's default.
func (c *Client) GenerateToAddress(ctx context.Context, nBlocks int64, address string, maxTries int64) (json.RawMessage, error) {
	return c.Call(ctx, "generatetoaddress", buildParams(arg(nBlocks), arg(address), opt(maxTries, maxTries != 0)))
}

// GenerateToDescriptor mines the given number of blocks, paying rewards to
// the given descriptor.
func (c *Client) GenerateToDescriptor(ctx context.Context, nBlocks int64, descriptor string, maxTries int64) (json.RawMessage, error) {
	return c.Call(ctx, "generatetodescriptor", buildParams(arg(nBlocks), arg(descriptor), opt(maxTries, maxTries != 0)))
}
