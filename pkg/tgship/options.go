package tgship

import (
	"net/http"

	"github.com/bft-labs/tgship/internal/ports"
	"github.com/bft-labs/tgship/pkg/log"
)

// HTTPClient is the interface for making HTTP requests.
// *http.Client satisfies this interface.
type HTTPClient = ports.HTTPClient

// Logger is the structured logging interface from pkg/log.
type Logger = log.Logger

// Option configures optional behavior of a Handler.
type Option func(*options)

type options struct {
	httpClient ports.HTTPClient
	logger     log.Logger
	baseURL    string
}

func defaultOptions(client *http.Client) options {
	return options{
		httpClient: client,
		logger:     log.NewNoopLogger(),
	}
}

// WithHTTPClient sets a custom HTTP client for API communication.
// If not provided, a pooled client with the configured timeout is used.
func WithHTTPClient(client HTTPClient) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithLogger sets the logger for local diagnostics: bootstrap failures,
// flood-control waits, rejected updates, the file-mode notice.
// If not provided, diagnostics are discarded.
func WithLogger(logger Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithBaseURL overrides the Bot API endpoint. Intended for tests.
func WithBaseURL(url string) Option {
	return func(o *options) {
		o.baseURL = url
	}
}
