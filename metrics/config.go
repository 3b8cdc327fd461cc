package metrics

// Config represents the configuration of the metrics endpoint.
type Config struct {
	Enabled bool   `long:"enabled" description:"expose client call metrics over HTTP"`
	Path    string `long:"path" description:"the HTTP path the metrics are served on"`
	Port    int    `long:"port" description:"the port the metrics server listens on"`
}

// NewDefaultConfig creates an instance of the package-specific
// configuration. Metrics are off unless asked for.
func NewDefaultConfig() Config {
	return Config{
		Enabled: false,
		Path:    "/metrics",
		Port:    2112,
	}
}
