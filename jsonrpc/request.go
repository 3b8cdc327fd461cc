package jsonrpc

import (
	"errors"
)

// VERSION1 is the protocol version bitcoind expects in the request envelope.
// The bitcoind dialect predates JSON-RPC 2.0 and answers 1.0-style framing.
const VERSION1 string = "1.0"

var (
	ErrOnlySupportJSONRPC1 = errors.New("the client only supports JSON-RPC 1.0")
	ErrMethodIsRequired    = errors.New("the method is required")
	ErrIDIsRequired        = errors.New("the request ID is required")
)

// Params is the ordered, positional parameter list of a request. The
// bitcoind dialect identifies arguments by position, not by name: an
// argument can only ever be omitted from the tail of the list.
type Params []interface{}

type Request struct {
	// Version specifies the version of the JSON-RPC protocol.
	// MUST be exactly "1.0".
	Version string `json:"jsonrpc"`

	// ID is an opaque correlation token established by the client. The
	// server echoes it back in the response. Calls are synchronous and
	// sequential, so the token does not need to be unique across calls,
	// but the framing requires it to be present.
	ID string `json:"id"`

	// Method contains the name of the method to be invoked.
	Method string `json:"method"`

	// Params holds the positional parameter values to be used during the
	// invocation of the method. It is always serialized, as an empty array
	// when the method takes no arguments.
	Params Params `json:"params"`
}

// NewRequest builds a request envelope. A nil parameter list is normalised
// to an empty one so the wire form always carries "params": [].
func NewRequest(id, method string, params Params) *Request {
	if params == nil {
		params = Params{}
	}
	return &Request{
		Version: VERSION1,
		ID:      id,
		Method:  method,
		Params:  params,
	}
}

func (r *Request) Check() error {
	if r.Version != VERSION1 {
		return ErrOnlySupportJSONRPC1
	}

	if r.ID == "" {
		return ErrIDIsRequired
	}

	if r.Method == "" {
		return ErrMethodIsRequired
	}

	return nil
}
