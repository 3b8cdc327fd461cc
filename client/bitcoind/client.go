package bitcoind

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/genyleap/bitcoin-rpc/jsonrpc"
	"github.com/genyleap/bitcoin-rpc/logging"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Call outcomes as reported to the observer, one per failure class plus
// success.
const (
	OutcomeOK        = "ok"
	OutcomeTransport = "transport"
	OutcomeProtocol  = "protocol"
	OutcomeRemote    = "remote"
)

// Observer is notified after every completed call, whatever its outcome.
// It is an observability hook: the pipeline's behavior never depends on it.
type Observer interface {
	ObserveCall(method, outcome string, duration time.Duration)
}

// Client speaks the bitcoind JSON-RPC dialect to a single node. All of its
// state is set at construction, so concurrent calls through one instance
// are safe; each call is one self-contained request/response exchange with
// no retry, caching, or session state.
type Client struct {
	log *logging.Logger
	cfg Config

	sender   Sender
	limiter  *rate.Limiter
	observer Observer
}

type Option func(*Client)

// WithSender replaces the HTTP transport, mostly so tests can drive the
// pipeline without a node.
func WithSender(sender Sender) Option {
	return func(c *Client) {
		c.sender = sender
	}
}

// WithObserver attaches an observability hook to the client.
func WithObserver(observer Observer) Option {
	return func(c *Client) {
		c.observer = observer
	}
}

// New returns a client for the node described by cfg. No I/O happens here;
// the first exchange is the first call.
func New(log *logging.Logger, cfg Config, opts ...Option) (*Client, error) {
	if len(cfg.Address) == 0 {
		return nil, ErrAddressIsRequired
	}
	if _, err := url.Parse(cfg.Address); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAddressIsMalformed, err)
	}
	if cfg.ID == "" {
		cfg.ID = DefaultID
	}

	log = log.Named(namedLogger)
	log.SetLevel(cfg.Level.Get())

	c := &Client{
		log: log,
		cfg: cfg,
	}

	if cfg.RateLimit > 0 {
		burst := cfg.RateBurst
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.sender == nil {
		httpClient := &http.Client{Timeout: cfg.Timeout.Get()}
		c.sender = newHTTPSender(httpClient, cfg.Address, cfg.User, cfg.Password)
	}

	return c, nil
}

// Call invokes the named method with the given positional parameters and
// returns the raw result bytes. Failures keep their class: a
// *TransportError when the exchange never completed, a *ProtocolError when
// the response did not parse, and a *jsonrpc.ErrorDetails when the node
// itself reported an error. A JSON null result is a success.
func (c *Client) Call(ctx context.Context, method string, params jsonrpc.Params) (json.RawMessage, error) {
	request := jsonrpc.NewRequest(c.cfg.ID, method, params)
	if err := request.Check(); err != nil {
		return nil, err
	}

	encoded, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("couldn't encode the request envelope: %w", err)
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, &TransportError{Address: c.cfg.Address, Err: err}
		}
	}

	if c.log.IsDebug() {
		c.log.Debug("sending RPC request",
			zap.String("method", method),
			zap.ByteString("request", encoded),
		)
	}

	start := time.Now()
	payload, err := c.sender.Send(ctx, encoded)
	if err != nil {
		c.observe(method, OutcomeTransport, start)
		c.log.Error("couldn't send RPC request",
			zap.String("method", method),
			zap.Error(err),
		)
		return nil, err
	}

	if c.log.IsDebug() {
		c.log.Debug("received RPC response",
			zap.String("method", method),
			zap.ByteString("response", payload),
		)
	}

	response, err := jsonrpc.UnmarshalResponse(payload)
	if err != nil {
		c.observe(method, OutcomeProtocol, start)
		c.log.Error("couldn't parse RPC response",
			zap.String("method", method),
			zap.Error(err),
		)
		return nil, &ProtocolError{Err: err}
	}

	if response.HasError() {
		c.observe(method, OutcomeRemote, start)
		c.log.Debug("node returned an RPC error",
			zap.String("method", method),
			zap.Int32("code", int32(response.Error.Code)),
			zap.String("message", response.Error.Message),
		)
		return nil, response.Error
	}

	c.observe(method, OutcomeOK, start)
	return response.Result, nil
}

func (c *Client) observe(method, outcome string, start time.Time) {
	if c.observer == nil {
		return
	}
	c.observer.ObserveCall(method, outcome, time.Since(start))
}

// UnmarshalResult is a convenience for callers that know the shape of a
// result: it decodes the raw bytes into v with the usual json rules.
func UnmarshalResult(result json.RawMessage, v interface{}) error {
	if err := json.Unmarshal(result, v); err != nil {
		return fmt.Errorf("couldn't decode the RPC result: %w", err)
	}
	return nil
}
