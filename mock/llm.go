package mock

import (
	"context"

	"github.com/tmc/langchaingo/llms"
)

var _ llms.Model = (*LLM)(nil)

// LLM is a mock implementation of langchaingo's llms.Model.
type LLM struct {
	GenerateContentFn func(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error)
	CallFn            func(ctx context.Context, prompt string, options ...llms.CallOption) (string, error)
}

func (m *LLM) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	return m.GenerateContentFn(ctx, messages, options...)
}

func (m *LLM) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return m.CallFn(ctx, prompt, options...)
}

// TextResponse builds a single-choice content response, the shape
// llms.GenerateFromSinglePrompt consumes.
func TextResponse(text string) *llms.ContentResponse {
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: text}},
	}
}

// PromptOf extracts the text parts of the first message, for asserting on
// prompts passed to GenerateContent.
func PromptOf(messages []llms.MessageContent) string {
	if len(messages) == 0 {
		return ""
	}
	var out string
	for _, part := range messages[0].Parts {
		if tc, ok := part.(llms.TextContent); ok {
			out += tc.Text
		}
	}
	return out
}
