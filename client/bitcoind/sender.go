package bitcoind

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/genyleap/bitcoin-rpc/jsonrpc"
)

// Sender is the transport the call pipeline rides on: post the encoded
// request, get the raw response body back. A non-nil error means the
// exchange failed at the transport level and no bytes may be interpreted.
type Sender interface {
	Send(ctx context.Context, body []byte) ([]byte, error)
}

type httpSender struct {
	client   *http.Client
	address  string
	user     string
	password string
}

func newHTTPSender(client *http.Client, address, user, password string) *httpSender {
	return &httpSender{
		client:   client,
		address:  address,
		user:     user,
		password: password,
	}
}

func (s *httpSender) Send(ctx context.Context, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.address, bytes.NewReader(body))
	if err != nil {
		return nil, &TransportError{Address: s.address, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(s.user, s.password)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &TransportError{Address: s.address, Err: err}
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Address: s.address, StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		// bitcoind reports application errors with a 500 status and a
		// well-formed envelope in the body. Those still belong to the
		// classifier; anything else is a plain HTTP failure.
		if !jsonrpc.IsEnvelope(payload) {
			return nil, &TransportError{
				Address:    s.address,
				StatusCode: resp.StatusCode,
				Err:        fmt.Errorf("unexpected HTTP status %q", resp.Status),
			}
		}
	}

	return payload, nil
}
