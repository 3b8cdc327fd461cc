package bitcoind

import (
	"github.com/genyleap/bitcoin-rpc/jsonrpc"
)

// The node identifies arguments by position. An optional argument can only
// be dropped when every argument after it is dropped too; as soon as a later
// argument is present, all earlier ones must be encoded, defaults included,
// because position encodes meaning.

// param is one positional argument with its omission policy resolved at the
// call site.
type param struct {
	value interface{}
	unset bool
}

// arg is a required argument. It is always encoded.
func arg(v interface{}) param {
	return param{value: v}
}

// opt is an optional trailing argument. set is an explicit presence flag:
// whether the value is at its default is decided by the caller, never
// inferred from the value itself, since a zero can be a real argument
// (a confirmation count of 0, say).
func opt(v interface{}, set bool) param {
	return param{value: v, unset: !set}
}

// buildParams assembles the positional parameter list. The omission boundary
// is computed once, from the tail: unset arguments are dropped while they
// form the suffix of the list, and everything before the boundary is encoded
// as-is.
func buildParams(ps ...param) jsonrpc.Params {
	end := len(ps)
	for end > 0 && ps[end-1].unset {
		end--
	}

	out := make(jsonrpc.Params, 0, end)
	for _, p := range ps[:end] {
		out = append(out, p.value)
	}
	return out
}
