package mock

import (
	cdpagent "github.com/pswitchy/CDP-Support-Chatbot"
)

var _ cdpagent.Similarity = (*Similarity)(nil)

// Similarity is a mock implementation of cdpagent.Similarity.
type Similarity struct {
	ScoreFn func(a, b string) float64
}

func (s *Similarity) Score(a, b string) float64 {
	return s.ScoreFn(a, b)
}
