package mock

import (
	"context"

	cdpagent "github.com/pswitchy/CDP-Support-Chatbot"
)

var _ cdpagent.DocumentResolver = (*DocumentResolver)(nil)

// DocumentResolver is a mock implementation of cdpagent.DocumentResolver.
type DocumentResolver struct {
	ResolveFn func(ctx context.Context, cdp, task string) (string, error)
}

func (r *DocumentResolver) Resolve(ctx context.Context, cdp, task string) (string, error) {
	return r.ResolveFn(ctx, cdp, task)
}
