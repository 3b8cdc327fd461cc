package bitcoind

import (
	"context"
	"encoding/json"
)

// Network RPCs.

// AddNode adds, removes or tries a connection to the given node. command is
// one of "add", "remove" or "onetry".
func (c *Client) AddNode(ctx context.Context, node, command string) (json.RawMessage, error) {
	return c.Call(ctx, "addnode", buildParams(arg(node), arg(command)))
}

// ClearBanned clears the list of banned peers.
func (c *Client) ClearBanned(ctx context.Context) (json.RawMessage, error) {
	return c.Call(ctx, "clearbanned", nil)
}

// DisconnectNode immediately disconnects the peer at the given address.
func (c *Client) DisconnectNode(ctx context.Context, address string) (json.RawMessage, error) {
	return c.Call(ctx, "disconnectnode", buildParams(arg(address)))
}

// GetAddedNodeInfo returns information about the given manually added node,
// or all of them when node is empty.
func (c *Client) GetAddedNodeInfo(ctx context.Context, node string) (json.RawMessage, error) {
	return c.Call(ctx, "getaddednodeinfo", buildParams(opt(node, len(node) > 0)))
}

// GetConnectionCount returns the number of connections to other nodes.
func (c *Client) GetConnectionCount(ctx context.Context) (json.RawMessage, error) {
	return c.Call(ctx, "getconnectioncount", nil)
}

// GetNetTotals returns network traffic statistics.
func (c *Client) GetNetTotals(ctx context.Context) (json.RawMessage, error) {
	return c.Call(ctx, "getnettotals", nil)
}

// GetNetworkInfo returns state information about P2P networking.
func (c *Client) GetNetworkInfo(ctx context.Context) (json.RawMessage, error) {
	return c.Call(ctx, "getnetworkinfo", nil)
}

// GetNodeAddresses returns known addresses likely to accept incoming
// connections.
func (c *Client) GetNodeAddresses(ctx context.Context, count int64) (json.RawMessage, error) {
	return c.Call(ctx, "getnodeaddresses", buildParams(opt(count, count != 1)))
}

// GetPeerInfo returns data about each connected peer.
func (c *Client) GetPeerInfo(ctx context.Context) (json.RawMessage, error) {
	return c.Call(ctx, "getpeerinfo", nil)
}

// ListBanned lists all banned subnets.
func (c *Client) ListBanned(ctx context.Context) (json.RawMessage, error) {
	return c.Call(ctx, "listbanned", nil)
}

// Ping queues a ping to every connected peer; the results show up in the
// pingtime and pingwait fields of getpeerinfo.
func (c *Client) Ping(ctx context.Context) (json.RawMessage, error) {
	return c.Call(ctx, "ping", nil)
}

// SetBan bans ("add") or unbans ("remove") the given IP or subnet. banTime
// is in seconds, 0 for the node's default; with absolute set it is a UNIX
// timestamp instead.
func (c *Client) SetBan(ctx context.Context, subnet, command string, banTime int64, absolute bool) (json.RawMessage, error) {
	return c.Call(ctx, "setban", buildParams(
		arg(subnet),
		arg(command),
		opt(banTime, banTime != 0),
		opt(absolute, absolute),
	))
}

// SetNetworkActive enables or disables all P2P network activity.
func (c *Client) SetNetworkActive(ctx context.Context, state bool) (json.RawMessage, error) {
	return c.Call(ctx, "setnetworkactive", buildParams(arg(state)))
}
