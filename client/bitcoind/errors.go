package bitcoind

import (
	"errors"
	"fmt"
)

var (
	ErrAddressIsRequired  = errors.New("the node address is required")
	ErrAddressIsMalformed = errors.New("the node address is not a valid URL")
)

// TransportError reports that the request could not be delivered or the
// response could not be received: connection refused, timeout, TLS failure,
// or an HTTP status that did not carry a reply envelope. The response body
// was never interpreted.
type TransportError struct {
	// Address is the endpoint the exchange was attempted against.
	Address string

	// StatusCode is the HTTP status of the reply, or 0 when the exchange
	// failed before a status line was read.
	StatusCode int

	Err error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("couldn't reach the node at %s: %v (status %d)", e.Address, e.Err, e.StatusCode)
	}
	return fmt.Sprintf("couldn't reach the node at %s: %v", e.Address, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ProtocolError reports response bytes that did not parse as a reply
// envelope. The parser diagnostic is carried verbatim.
type ProtocolError struct {
	Err error
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("malformed RPC response: %v", e.Err)
}

func (e *ProtocolError) Unwrap() error {
	return e.Err
}
