package bitcoind

import (
	"context"
	"encoding/json"
)

// Blockchain RPCs.

// GetBestBlockHash returns the hash of the best (tip) block of the
// most-work fully-validated chain.
func (c *Client) GetBestBlockHash(ctx context.Context) (json.RawMessage, error) {
	return c.Call(ctx, "getbestblockhash", nil)
}

// GetBlock returns information about the block with the given hash. With
// verbose set, the node returns the decoded block with transaction details
// (verbosity 2); otherwise the decoded block with transaction IDs only
// (verbosity 1).
func (c *Client) GetBlock(ctx context.Context, blockHash string, verbose bool) (json.RawMessage, error) {
	verbosity := 1
	if verbose {
		verbosity = 2
	}
	return c.Call(ctx, "getblock", buildParams(arg(blockHash), arg(verbosity)))
}

// GetBlockchainInfo returns state information about blockchain processing.
func (c *Client) GetBlockchainInfo(ctx context.Context) (json.RawMessage, error) {
	return c.Call(ctx, "getblockchaininfo", nil)
}

// GetBlockCount returns the height of the most-work fully-validated chain.
func (c *Client) GetBlockCount(ctx context.Context) (json.RawMessage, error) {
	return c.Call(ctx, "getblockcount", nil)
}

// GetBlockFilter returns a BIP 157 content filter for the given block.
func (c *Client) GetBlockFilter(ctx context.Context, blockHash, filterType string) (json.RawMessage, error) {
	return c.Call(ctx, "getblockfilter", buildParams(arg(blockHash), arg(filterType)))
}

// GetBlockHash returns the hash of the block at the given height in the
// best chain.
func (c *Client) GetBlockHash(ctx context.Context, height int64) (json.RawMessage, error) {
	return c.Call(ctx, "getblockhash", buildParams(arg(height)))
}

// GetBlockHeader returns information about the given block header.
func (c *Client) GetBlockHeader(ctx context.Context, blockHash string, verbose bool) (json.RawMessage, error) {
	return c.Call(ctx, "getblockheader", buildParams(arg(blockHash), opt(verbose, !verbose)))
}

// GetBlockStats computes per-block statistics. An empty stats list asks the
// node for all of them.
func (c *Client) GetBlockStats(ctx context.Context, blockHash string, stats []string) (json.RawMessage, error) {
	return c.Call(ctx, "getblockstats", buildParams(arg(blockHash), opt(stats, len(stats) > 0)))
}

// GetChainTips returns information about all known chain tips, including
// orphaned branches.
func (c *Client) GetChainTips(ctx context.Context) (json.RawMessage, error) {
	return c.Call(ctx, "getchaintips", nil)
}

// GetChainTxStats computes statistics about the total number and rate of
// transactions. nBlocks of 0 and an empty blockHash leave the window to the
// node.
func (c *Client) GetChainTxStats(ctx context.Context, nBlocks int64, blockHash string) (json.RawMessage, error) {
	return c.Call(ctx, "getchaintxstats", buildParams(
		opt(nBlocks, nBlocks != 0),
		opt(blockHash, len(blockHash) > 0),
	))
}

// GetDifficulty returns the current proof-of-work difficulty.
func (c *Client) GetDifficulty(ctx context.Context) (json.RawMessage, error) {
	return c.Call(ctx, "getdifficulty", nil)
}

// GetMempoolAncestors returns the in-mempool ancestors of the given
// transaction.
func (c *Client) GetMempoolAncestors(ctx context.Context, txID string, verbose bool) (json.RawMessage, error) {
	return c.Call(ctx, "getmempoolancestors", buildParams(arg(txID), opt(verbose, verbose)))
}

// GetMempoolDescendants returns the in-mempool descendants of the given
// transaction.
func (c *Client) GetMempoolDescendants(ctx context.Context, txID string, verbose bool) (json.RawMessage, error) {
	return c.Call(ctx, "getmempooldescendants", buildParams(arg(txID), opt(verbose, verbose)))
}

// GetMempoolEntry returns mempool data for the given transaction. The
// transaction must be in the mempool.
func (c *Client) GetMempoolEntry(ctx context.Context, txID string) (json.RawMessage, error) {
	return c.Call(ctx, "getmempoolentry", buildParams(arg(txID)))
}

// GetMempoolInfo returns details on the active state of the transaction
// memory pool.
func (c *Client) GetMempoolInfo(ctx context.Context) (json.RawMessage, error) {
	return c.Call(ctx, "getmempoolinfo", nil)
}

// GetRawMempool returns all transaction IDs in the mempool, or full
// transaction details when verbose is set.
func (c *Client) GetRawMempool(ctx context.Context, verbose bool) (json.RawMessage, error) {
	return c.Call(ctx, "getrawmempool", buildParams(opt(verbose, verbose)))
}

// GetTxOut returns details about an unspent transaction output.
func (c *Client) GetTxOut(ctx context.Context, txID string, n int64, includeMempool bool) (json.RawMessage, error) {
	return c.Call(ctx, "gettxout", buildParams(arg(txID), arg(n), opt(includeMempool, !includeMempool)))
}

// GetTxOutProof returns a hex-encoded proof that the given transactions
// were included in a block. Without a block hash, the node has to find the
// transactions in the UTXO set or the mempool.
func (c *Client) GetTxOutProof(ctx context.Context, txIDs []string, blockHash string) (json.RawMessage, error) {
	return c.Call(ctx, "gettxoutproof", buildParams(arg(txIDs), opt(blockHash, len(blockHash) > 0)))
}

// GetTxOutSetInfo returns statistics about the unspent transaction output
// set. This call may take some time on the node.
func (c *Client) GetTxOutSetInfo(ctx context.Context) (json.RawMessage, error) {
	return c.Call(ctx, "gettxoutsetinfo", nil)
}

// PreciousBlock treats a block as if it were received before others with
// the same work.
func (c *Client) PreciousBlock(ctx context.Context, blockHash string) (json.RawMessage, error) {
	return c.Call(ctx, "preciousblock", buildParams(arg(blockHash)))
}

// PruneBlockchain prunes the blockchain up to the given height.
func (c *Client) PruneBlockchain(ctx context.Context, height int64) (json.RawMessage, error) {
	return c.Call(ctx, "pruneblockchain", buildParams(arg(height)))
}

// SaveMempool dumps the mempool to disk.
func (c *Client) SaveMempool(ctx context.Context) (json.RawMessage, error) {
	return c.Call(ctx, "savemempool", nil)
}

// ScanTxOutSet starts, checks or aborts a scan of the unspent transaction
// output set. action is "start", "status" or "abort"; scanObjects lists the
// descriptors to scan for and is only needed with "start".
func (c *Client) ScanTxOutSet(ctx context.Context, action string, scanObjects []string) (json.RawMessage, error) {
	return c.Call(ctx, "scantxoutset", buildParams(arg(action), opt(scanObjects, len(scanObjects) > 0)))
}

// VerifyChain verifies the blockchain database.
func (c *Client) VerifyChain(ctx context.Context, checkLevel, nBlocks int64) (json.RawMessage, error) {
	return c.Call(ctx, "verifychain", buildParams(
		opt(checkLevel, checkLevel != 3),
		opt(nBlocks, nBlocks != 6),
	))
}

// VerifyTxOutProof verifies a proof produced by gettxoutproof and returns
// the transactions it commits to.
func (c *Client) VerifyTxOutProof(ctx context.Context, proof string) (json.RawMessage, error) {
	return c.Call(ctx, "verifytxoutproof", buildParams(arg(proof)))
}
