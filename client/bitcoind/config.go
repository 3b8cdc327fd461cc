package bitcoind

import (
	"time"

	"github.com/genyleap/bitcoin-rpc/config/encoding"
	"github.com/genyleap/bitcoin-rpc/logging"
)

const namedLogger = "bitcoind"

// DefaultAddress is where a locally running mainnet bitcoind listens for
// RPC requests.
const DefaultAddress = "http://127.0.0.1:8332/"

// DefaultID is the correlation token stamped on every request envelope.
const DefaultID = "Genyleap-Bitcoin-RPC"

const defaultRequestTimeout = 30 * time.Second

// Config holds everything a client instance needs to reach a node. It is
// set at construction and never mutated, so a single client can be shared
// across goroutines without synchronisation.
type Config struct {
	Level encoding.LogLevel `long:"log-level"`

	// Address is the base endpoint of the node's RPC server.
	Address string `long:"address" description:"the address of the bitcoind RPC server"`

	// User and Password form the credential pair attached to every request
	// through HTTP basic authentication (rpcuser/rpcpassword in
	// bitcoin.conf).
	User     string `long:"user" description:"the RPC username"`
	Password string `long:"password" description:"the RPC password"`

	// ID is the correlation token placed in the request envelope. Calls are
	// synchronous, so one constant token per client is enough.
	ID string `long:"id" description:"the correlation token used in request envelopes"`

	// Timeout bounds a whole request/response exchange.
	Timeout encoding.Duration `long:"timeout" description:"the maximum duration of a single RPC exchange, e.g. 30s"`

	// RateLimit paces outgoing calls, in requests per second. Zero disables
	// pacing. Burst only applies when pacing is on.
	RateLimit float64 `long:"rate-limit" description:"maximum requests per second, 0 to disable"`
	RateBurst int     `long:"rate-burst" description:"burst size when rate limiting is enabled"`
}

// NewDefaultConfig creates an instance of the package-specific configuration,
// pointed at a local mainnet node.
func NewDefaultConfig() Config {
	return Config{
		Level:   encoding.LogLevel{Level: logging.InfoLevel},
		Address: DefaultAddress,
		ID:      DefaultID,
		Timeout: encoding.Duration{Duration: defaultRequestTimeout},
	}
}
