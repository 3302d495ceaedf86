package slog

import (
	"context"
	"log/slog"
	"time"

	cdpagent "github.com/pswitchy/CDP-Support-Chatbot"
)

// Ensure LoggingResolver implements cdpagent.DocumentResolver.
var _ cdpagent.DocumentResolver = (*LoggingResolver)(nil)

// LoggingResolver wraps a DocumentResolver with operation logging.
type LoggingResolver struct {
	next   cdpagent.DocumentResolver
	logger *slog.Logger
}

// NewLoggingResolver creates a new LoggingResolver.
func NewLoggingResolver(next cdpagent.DocumentResolver, logger *slog.Logger) *LoggingResolver {
	return &LoggingResolver{next: next, logger: logger}
}

// Resolve delegates to the wrapped resolver and logs the operation.
func (r *LoggingResolver) Resolve(ctx context.Context, cdp, task string) (text string, err error) {
	defer func(begin time.Time) {
		r.logger.Info("documentation resolution",
			"cdp", cdp,
			"task", task,
			"chars", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Resolve(ctx, cdp, task)
}
