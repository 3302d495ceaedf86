package mock

import (
	"context"

	cdpagent "github.com/pswitchy/CDP-Support-Chatbot"
)

var _ cdpagent.QuestionAnswerer = (*QuestionAnswerer)(nil)

// QuestionAnswerer is a mock implementation of cdpagent.QuestionAnswerer.
type QuestionAnswerer struct {
	AnswerFn func(ctx context.Context, question string) (*cdpagent.Answer, error)
}

func (a *QuestionAnswerer) Answer(ctx context.Context, question string) (*cdpagent.Answer, error) {
	return a.AnswerFn(ctx, question)
}
