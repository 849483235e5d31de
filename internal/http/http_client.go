package http

import (
	"net"
	"net/http"
	"time"
)

// HTTPClient interface abstracts the single HTTP exchange performed by the
// request pipeline, so tests can substitute a fake transport.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewHTTPClient creates a client tuned for short-lived JSON API calls.
// The timeout bounds the whole exchange including reading the body.
func NewHTTPClient(timeout time.Duration) HTTPClient {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   10 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
			TLSHandshakeTimeout: 10 * time.Second,
			ForceAttemptHTTP2:   true,
		},
	}
}
