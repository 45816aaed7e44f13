package fact

import (
	"net"
	"net/http"
	"time"
)

const (
	// DialTimeout is the connection timeout.
	DialTimeout = 5 * time.Second
	// TLSHandshakeTimeout is the TLS negotiation timeout.
	TLSHandshakeTimeout = 5 * time.Second
	// IdleConnTimeout is how long idle upstream connections are kept.
	IdleConnTimeout = 90 * time.Second
)

// NewHTTPClient creates an HTTP client configured for upstream fact fetches.
// The overall deadline is applied per request via context, so the client
// itself carries no total timeout.
func NewHTTPClient() *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   DialTimeout,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			TLSHandshakeTimeout: TLSHandshakeTimeout,
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 4,
			IdleConnTimeout:     IdleConnTimeout,
		},
	}
}
