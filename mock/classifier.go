package mock

import (
	"context"

	cdpagent "github.com/pswitchy/CDP-Support-Chatbot"
)

var _ cdpagent.Classifier = (*Classifier)(nil)

// Classifier is a mock implementation of cdpagent.Classifier.
type Classifier struct {
	ClassifyFn func(ctx context.Context, question string) (cdpagent.Classification, error)
}

func (c *Classifier) Classify(ctx context.Context, question string) (cdpagent.Classification, error) {
	return c.ClassifyFn(ctx, question)
}
