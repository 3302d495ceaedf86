package mock

import (
	"context"

	cdpagent "github.com/pswitchy/CDP-Support-Chatbot"
)

var _ cdpagent.Synthesizer = (*Synthesizer)(nil)

// Synthesizer is a mock implementation of cdpagent.Synthesizer.
type Synthesizer struct {
	SynthesizeFn func(ctx context.Context, question, docText string, c cdpagent.Classification) (string, error)
}

func (s *Synthesizer) Synthesize(ctx context.Context, question, docText string, c cdpagent.Classification) (string, error) {
	return s.SynthesizeFn(ctx, question, docText, c)
}
