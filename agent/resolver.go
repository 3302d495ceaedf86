// Package agent composes the classification, resolution and synthesis
// components into the question-answering pipeline.
package agent

import (
	"context"

	cdpagent "github.com/pswitchy/CDP-Support-Chatbot"
)

// Ensure Resolver implements cdpagent.DocumentResolver at compile time.
var _ cdpagent.DocumentResolver = (*Resolver)(nil)

// Resolver turns a (cdp, task) pair into documentation text: catalog URL
// lookup with a per-CDP root fallback, a TTL cache in front of the
// network, fetch and main-content extraction behind it.
type Resolver struct {
	catalog   *cdpagent.Catalog
	cache     cdpagent.DocumentCache
	fetcher   cdpagent.Fetcher
	extractor cdpagent.Extractor
}

// NewResolver creates a new Resolver.
func NewResolver(catalog *cdpagent.Catalog, cache cdpagent.DocumentCache, fetcher cdpagent.Fetcher, extractor cdpagent.Extractor) *Resolver {
	return &Resolver{
		catalog:   catalog,
		cache:     cache,
		fetcher:   fetcher,
		extractor: extractor,
	}
}

// Resolve returns the extracted documentation text for (cdp, task).
// A fresh cache entry short-circuits the network entirely; extraction
// failures leave the cache untouched.
func (r *Resolver) Resolve(ctx context.Context, cdp, task string) (string, error) {
	url, err := r.selectURL(cdp, task)
	if err != nil {
		return "", err
	}

	if text, ok := r.cache.Get(url); ok {
		return text, nil
	}

	html, err := r.fetcher.Fetch(ctx, url)
	if err != nil {
		return "", err
	}

	text, err := r.extractor.Extract(html)
	if err != nil {
		return "", err
	}

	r.cache.Set(url, text)
	return text, nil
}

// selectURL prefers the task-specific catalog entry, then the CDP's root
// documentation URL.
func (r *Resolver) selectURL(cdp, task string) (string, error) {
	if task != "" {
		if url, ok := r.catalog.LookupURL(cdp, task); ok {
			return url, nil
		}
	}
	if url, ok := cdpagent.RootDocumentationURLs[cdp]; ok {
		return url, nil
	}
	return "", cdpagent.Errorf(cdpagent.ENOTFOUND, "No documentation URL available for %s", cdp)
}
