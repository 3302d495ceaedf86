// Package http provides the HTTP adapters: a documentation page fetcher
// with browser-like headers and the gin-based API server.
package http

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"os"
	"time"

	cdpagent "github.com/pswitchy/CDP-Support-Chatbot"
)

// DefaultFetchTimeout bounds a single documentation page fetch.
const DefaultFetchTimeout = 15 * time.Second

// userAgent is a desktop-browser User-Agent. Some documentation sites
// reject requests carrying Go's default agent.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Ensure Fetcher implements cdpagent.Fetcher at compile time.
var _ cdpagent.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from documentation URLs.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (15s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content at url. Failures are classified into
// the resolver error codes so callers can distinguish HTTP status,
// connection and timeout problems without inspecting message text.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", cdpagent.Errorf(cdpagent.EINVALID, "Error fetching documentation: %v", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", classifyRequestError(err, url)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", cdpagent.Errorf(cdpagent.EHTTP, "HTTP Error: %d - %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", cdpagent.Errorf(cdpagent.EUNAVAILABLE, "Error fetching documentation: %v", err)
	}

	return string(body), nil
}

// classifyRequestError maps transport failures onto the timeout,
// connection and generic fetch error codes.
func classifyRequestError(err error, url string) error {
	if os.IsTimeout(err) || errors.Is(err, context.DeadlineExceeded) {
		return cdpagent.Errorf(cdpagent.ETIMEOUT, "Timeout Error: Request to %s timed out", url)
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return cdpagent.Errorf(cdpagent.ECONNECTION, "Connection Error: Could not connect to %s", url)
	}

	return cdpagent.Errorf(cdpagent.EUNAVAILABLE, "Error fetching documentation: %v", err)
}
