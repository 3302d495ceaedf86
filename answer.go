package cdpagent

import "context"

// Answer is the reply to a support question. CDP and Task are nil when the
// question could not be attributed to a known platform; Task is nil when
// the platform was identified but no specific task was.
type Answer struct {
	Answer string  `json:"answer"`
	CDP    *string `json:"cdp"`
	Task   *string `json:"task"`
}

// QuestionAnswerer runs the full classify, resolve and synthesize
// pipeline for one question.
type QuestionAnswerer interface {
	// Answer processes question end to end. Component failures degrade to
	// user-facing replies rather than errors; an error return is reserved
	// for unexpected defects and maps to a 500 at the HTTP boundary.
	Answer(ctx context.Context, question string) (*Answer, error)
}
