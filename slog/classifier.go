// Package slog provides logging decorators for the agent's components.
package slog

import (
	"context"
	"log/slog"
	"time"

	cdpagent "github.com/pswitchy/CDP-Support-Chatbot"
)

// Ensure LoggingClassifier implements cdpagent.Classifier.
var _ cdpagent.Classifier = (*LoggingClassifier)(nil)

// LoggingClassifier wraps a Classifier with operation logging.
type LoggingClassifier struct {
	next   cdpagent.Classifier
	logger *slog.Logger
}

// NewLoggingClassifier creates a new LoggingClassifier.
func NewLoggingClassifier(next cdpagent.Classifier, logger *slog.Logger) *LoggingClassifier {
	return &LoggingClassifier{next: next, logger: logger}
}

// Classify delegates to the wrapped classifier and logs the operation.
func (c *LoggingClassifier) Classify(ctx context.Context, question string) (result cdpagent.Classification, err error) {
	defer func(begin time.Time) {
		c.logger.Info("question classification",
			"cdp", result.CDP,
			"task", result.Task,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Classify(ctx, question)
}
