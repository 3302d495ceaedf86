package agent

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	cdpagent "github.com/pswitchy/CDP-Support-Chatbot"
)

const apologyReply = "I'm sorry, I encountered an error while generating an answer. Please try again later."

// Ensure Agent implements cdpagent.QuestionAnswerer at compile time.
var _ cdpagent.QuestionAnswerer = (*Agent)(nil)

// Agent answers CDP support questions by classifying the question,
// resolving the relevant documentation and synthesizing a grounded
// answer. Every failure mode produces a user-facing reply rather than
// an error: Answer only ever fails on an empty question.
type Agent struct {
	classifier  cdpagent.Classifier
	resolver    cdpagent.DocumentResolver
	synthesizer cdpagent.Synthesizer
	catalog     *cdpagent.Catalog
	logger      *slog.Logger
}

// NewAgent creates a new Agent.
func NewAgent(classifier cdpagent.Classifier, resolver cdpagent.DocumentResolver, synthesizer cdpagent.Synthesizer, catalog *cdpagent.Catalog, opts ...AgentOption) *Agent {
	a := &Agent{
		classifier:  classifier,
		resolver:    resolver,
		synthesizer: synthesizer,
		catalog:     catalog,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// AgentOption configures an Agent.
type AgentOption func(*Agent)

// WithLogger sets the logger used for pipeline diagnostics.
func WithLogger(logger *slog.Logger) AgentOption {
	return func(a *Agent) {
		a.logger = logger
	}
}

// Answer runs the classify, resolve, synthesize pipeline for question.
func (a *Agent) Answer(ctx context.Context, question string) (*cdpagent.Answer, error) {
	if question == "" {
		return nil, cdpagent.Errorf(cdpagent.EINVALID, "Question cannot be empty.")
	}

	classification, err := a.classifier.Classify(ctx, question)
	if err != nil {
		a.logger.Error("classification failed", "error", err)
		classification = cdpagent.Classification{}
	}

	if !classification.Identified() {
		return &cdpagent.Answer{Answer: a.clarificationReply()}, nil
	}

	docText, err := a.resolver.Resolve(ctx, classification.CDP, classification.Task)
	if err != nil {
		a.logger.Warn("documentation resolution failed",
			"cdp", classification.CDP, "task", classification.Task, "error", err)
		return replyFor(classification, fmt.Sprintf(
			"I'm having trouble accessing the documentation for %s. %s",
			classification.CDP, cdpagent.ErrorMessage(err))), nil
	}

	answer, err := a.synthesizer.Synthesize(ctx, question, docText, classification)
	if err != nil {
		a.logger.Error("answer synthesis failed",
			"cdp", classification.CDP, "task", classification.Task, "error", err)
		return replyFor(classification, apologyReply), nil
	}

	return replyFor(classification, answer), nil
}

func (a *Agent) clarificationReply() string {
	return fmt.Sprintf(
		"I can only help with questions about the following CDPs: %s. Could you please specify which platform you're asking about?",
		strings.Join(a.catalog.CDPs(), ", "))
}

// replyFor builds an Answer carrying the classification alongside text.
// The task pointer stays nil when no task was identified.
func replyFor(c cdpagent.Classification, text string) *cdpagent.Answer {
	answer := &cdpagent.Answer{Answer: text, CDP: &c.CDP}
	if c.HasTask() {
		answer.Task = &c.Task
	}
	return answer
}
