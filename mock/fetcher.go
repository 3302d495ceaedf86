package mock

import (
	"context"

	cdpagent "github.com/pswitchy/CDP-Support-Chatbot"
)

var _ cdpagent.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of cdpagent.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}
