package mock

import (
	cdpagent "github.com/pswitchy/CDP-Support-Chatbot"
)

var _ cdpagent.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of cdpagent.Extractor.
type Extractor struct {
	ExtractFn func(html string) (string, error)
}

func (e *Extractor) Extract(html string) (string, error) {
	return e.ExtractFn(html)
}
