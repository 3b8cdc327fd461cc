package bitcoind

import (
	"context"
	"encoding/json"
)

// Util RPCs.

// CreateMultiSig creates a multi-signature address requiring nRequired of
// the given public keys to spend.
func (c *Client) CreateMultiSig(ctx context.Context, nRequired int64, keys []string) (json.RawMessage, error) {
	return c.Call(ctx, "createmultisig", buildParams(arg(nRequired), arg(keys)))
}

// DeriveAddresses derives one or more addresses from an output descriptor.
// rng is the raw derivation range for ranged descriptors; leave it empty
// otherwise.
func (c *Client) DeriveAddresses(ctx context.Context, descriptor string, rng json.RawMessage) (json.RawMessage, error) {
	return c.Call(ctx, "deriveaddresses", buildParams(arg(descriptor), opt(rng, len(rng) > 0)))
}

// EstimateSmartFee estimates the fee rate needed for a transaction to begin
// confirmation within confTarget blocks. estimateMode is "UNSET",
// "ECONOMICAL" or "CONSERVATIVE"; empty leaves it to the node.
func (c *Client) EstimateSmartFee(ctx context.Context, confTarget int64, estimateMode string) (json.RawMessage, error) {
	return c.Call(ctx, "estimatesmartfee", buildParams(arg(confTarget), opt(estimateMode, len(estimateMode) > 0)))
}

// GetDescriptorInfo analyses the given output descriptor.
func (c *Client) GetDescriptorInfo(ctx context.Context, descriptor string) (json.RawMessage, error) {
	return c.Call(ctx, "getdescriptorinfo", buildParams(arg(descriptor)))
}

// GetIndexInfo returns the status of the node's optional indices.
func (c *Client) GetIndexInfo(ctx context.Context) (json.RawMessage, error) {
	return c.Call(ctx, "getindexinfo", nil)
}

// SignMessageWithPrivKey signs a message with the given private key.
func (c *Client) SignMessageWithPrivKey(ctx context.Context, privKey, message string) (json.RawMessage, error) {
	return c.Call(ctx, "signmessagewithprivkey", buildParams(arg(privKey), arg(message)))
}

// ValidateAddress returns information about the given address.
func (c *Client) ValidateAddress(ctx context.Context, address string) (json.RawMessage, error) {
	return c.Call(ctx, "validateaddress", buildParams(arg(address)))
}

// VerifyMessage verifies a signature over a message against the given
// address.
func (c *Client) VerifyMessage(ctx context.Context, address, signature, message string) (json.RawMessage, error) {
	return c.Call(ctx, "verifymessage", buildParams(arg(address), arg(signature), arg(message)))
}
