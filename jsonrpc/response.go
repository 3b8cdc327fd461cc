package jsonrpc

import (
	"encoding/json"
	"fmt"
)

// ErrorCode is the numeric identifier carried by a protocol error reply.
// bitcoind uses the reserved JSON-RPC range for framing problems and its own
// application range (RPC_* codes) for everything else. The client surfaces
// whatever code the node sent, without remapping.
type ErrorCode int32

const (
	// ErrorCodeParseError Invalid JSON was received by the server.
	ErrorCodeParseError ErrorCode = -32700
	// ErrorCodeInvalidRequest The JSON sent is not a valid Request object.
	ErrorCodeInvalidRequest ErrorCode = -32600
	// ErrorCodeMethodNotFound The method does not exist / is not available.
	ErrorCodeMethodNotFound ErrorCode = -32601
	// ErrorCodeInvalidParams Invalid method parameter(s).
	ErrorCodeInvalidParams ErrorCode = -32602
	// ErrorCodeInternalError Internal JSON-RPC error.
	ErrorCodeInternalError ErrorCode = -32603
)

// ErrorDetails is the error reported by the remote node in a well-formed
// reply. It is the "Remote Error" of the failure taxonomy and is returned
// verbatim to the caller.
type ErrorDetails struct {
	Code    ErrorCode       `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func NewErrorDetails(code ErrorCode, message string) *ErrorDetails {
	return &ErrorDetails{
		Code:    code,
		Message: message,
	}
}

func (d *ErrorDetails) Error() string {
	return fmt.Sprintf("%s (%d)", d.Message, d.Code)
}

// Response is the reply envelope. In a well-formed reply exactly one of
// Result and Error is meaningfully present; when both are null the call is
// treated as succeeding with a null result, which is how bitcoind reports
// operations that return no data.
type Response struct {
	// Result is kept as raw bytes so numeric results survive untouched:
	// decoding through an intermediate representation would turn integers
	// into floats.
	Result json.RawMessage `json:"result"`
	Error  *ErrorDetails   `json:"error"`
	ID     string          `json:"id"`
}

// HasError reports whether the node answered with a protocol-level error.
func (r *Response) HasError() bool {
	return r.Error != nil
}

// UnmarshalResponse parses raw bytes into a reply envelope. The parser
// diagnostic is returned verbatim on malformed input; no partial recovery is
// attempted.
func UnmarshalResponse(data []byte) (*Response, error) {
	resp := &Response{}
	if err := json.Unmarshal(data, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// IsEnvelope reports whether the bytes parse as a reply envelope carrying a
// result or an error. It exists so the transport can tell an application
// error reported over a non-2xx status (which bitcoind does) apart from a
// plain HTTP failure.
func IsEnvelope(data []byte) bool {
	resp, err := UnmarshalResponse(data)
	if err != nil {
		return false
	}
	return resp.HasError() || len(resp.Result) != 0
}
