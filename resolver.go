package cdpagent

import "context"

// DocumentResolver resolves a classified question to documentation text.
type DocumentResolver interface {
	// Resolve returns the extracted text of the documentation page for
	// (cdp, task). task may be empty, in which case the CDP's root
	// documentation URL is used. Failures carry the resolver error codes:
	// ENOTFOUND (no documentation URL for the CDP), EHTTP, ECONNECTION,
	// ETIMEOUT, ENOCONTENT, EUNAVAILABLE, EINTERNAL.
	Resolve(ctx context.Context, cdp, task string) (string, error)
}
