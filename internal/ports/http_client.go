package ports

import "net/http"

// HTTPClient is the transport used for Bot API calls. The standard
// *http.Client satisfies it; tests substitute recording fakes.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}
