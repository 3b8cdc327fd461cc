package bitcoind

import (
	"context"
	"encoding/json"
)

// Control RPCs.

// GetMemoryInfo returns information about the node's memory usage. mode is
// "stats" or "mallocinfo"; empty leaves it to the node.
func (c *Client) GetMemoryInfo(ctx context.Context, mode string) (json.RawMessage, error) {
	return c.Call(ctx, "getmemoryinfo", buildParams(opt(mode, len(mode) > 0)))
}

// GetRPCInfo returns details of the node's RPC server, such as the active
// commands.
func (c *Client) GetRPCInfo(ctx context.Context) (json.RawMessage, error) {
	return c.Call(ctx, "getrpcinfo", nil)
}

// Help returns the help text for the given command, or the list of all
// commands when none is given.
func (c *Client) Help(ctx context.Context, command string) (json.RawMessage, error) {
	return c.Call(ctx, "help", buildParams(opt(command, len(command) > 0)))
}

// Logging gets and sets the node's debug logging configuration. Categories
// in include are switched on, categories in exclude are switched off, and
// the resulting configuration is returned.
func (c *Client) Logging(ctx context.Context, include, exclude []string) (json.RawMessage, error) {
	return c.Call(ctx, "logging", buildParams(arg(include), arg(exclude)))
}

// Stop asks the node to shut down.
func (c *Client) Stop(ctx context.Context) (json.RawMessage, error) {
	return c.Call(ctx, "stop", nil)
}

// Uptime returns the number of seconds the node has been running.
func (c *Client) Uptime(ctx context.Context) (json.RawMessage, error) {
	return c.Call(ctx, "uptime", nil)
}
