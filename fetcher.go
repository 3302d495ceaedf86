package cdpagent

import "context"

// Fetcher retrieves raw HTML from documentation URLs.
type Fetcher interface {
	// Fetch returns the HTML body at url. The context controls timeout
	// and cancellation. Failures are classified into EHTTP, ECONNECTION,
	// ETIMEOUT or EUNAVAILABLE so callers can tell the kinds apart.
	Fetch(ctx context.Context, url string) (html string, err error)
}
