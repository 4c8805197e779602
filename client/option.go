package client

import (
	"net/http"
	"time"
)

// Option represents option
type Option func(c *Client)

// WithTimeout sets the HTTP client timeout
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithTransport sets the transport the auth round tripper delegates to
func WithTransport(base http.RoundTripper) Option {
	return func(c *Client) {
		c.base = base
	}
}

// WithHTTPClient replaces the HTTP client entirely; the caller then owns
// header wiring
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}
