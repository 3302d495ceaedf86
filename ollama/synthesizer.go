package ollama

import (
	"context"
	"fmt"
	"strings"

	cdpagent "github.com/pswitchy/CDP-Support-Chatbot"
	"github.com/tmc/langchaingo/llms"
)

// MaxDocumentChars bounds the documentation text passed to the model.
const MaxDocumentChars = 3000

// truncationMarker flags documentation that was cut at MaxDocumentChars.
const truncationMarker = "... [content truncated for length]"

// Temperature favors factual, low-variance answers.
const Temperature = 0.3

// Ensure Synthesizer implements cdpagent.Synthesizer at compile time.
var _ cdpagent.Synthesizer = (*Synthesizer)(nil)

// Synthesizer generates answers grounded in retrieved documentation.
type Synthesizer struct {
	model llms.Model
}

// NewSynthesizer creates a new Synthesizer.
func NewSynthesizer(model llms.Model) *Synthesizer {
	return &Synthesizer{model: model}
}

// Synthesize answers question using docText as the only source of truth.
func (s *Synthesizer) Synthesize(ctx context.Context, question, docText string, c cdpagent.Classification) (string, error) {
	if question == "" {
		return "", cdpagent.Errorf(cdpagent.EINVALID, "question required")
	}

	prompt := BuildSynthesizerPrompt(question, docText, c)

	answer, err := llms.GenerateFromSinglePrompt(ctx, s.model, prompt, llms.WithTemperature(Temperature))
	if err != nil {
		return "", cdpagent.Errorf(cdpagent.EUNAVAILABLE, "answer generation failed: %v", err)
	}

	return answer, nil
}

// TruncateContent bounds content to MaxDocumentChars, marking the cut.
func TruncateContent(content string) string {
	if len(content) <= MaxDocumentChars {
		return content
	}
	return content[:MaxDocumentChars] + truncationMarker
}

// BuildSynthesizerPrompt builds the answer prompt: context header,
// bounded documentation, question, and grounding instructions.
func BuildSynthesizerPrompt(question, docText string, c cdpagent.Classification) string {
	contextInfo := "CDP: " + c.CDP
	if c.HasTask() {
		contextInfo += ", Task: " + c.Task
	}

	var sb strings.Builder
	sb.WriteString("You are a helpful CDP (Customer Data Platform) support agent.\n\n")
	fmt.Fprintf(&sb, "CONTEXT INFORMATION:\n%s\n\n", contextInfo)
	fmt.Fprintf(&sb, "DOCUMENTATION:\n%s\n\n", TruncateContent(docText))
	fmt.Fprintf(&sb, "USER QUESTION:\n%s\n\n", question)
	sb.WriteString("Provide a helpful, accurate, and concise response based only on the documentation provided.\n")
	sb.WriteString("If you don't know or the information isn't in the documentation, say so clearly.\n")
	sb.WriteString("Be specific and cite relevant details from the documentation when possible.\n")
	return sb.String()
}
