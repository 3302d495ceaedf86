// Package strutil implements cdpagent.Similarity using adrg/strutil
// string metrics.
package strutil

import (
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	cdpagent "github.com/pswitchy/CDP-Support-Chatbot"
)

// Ensure Similarity implements cdpagent.Similarity at compile time.
var _ cdpagent.Similarity = (*Similarity)(nil)

// Similarity scores strings with a configurable metric. The default
// Sorensen-Dice bigram metric behaves close to sequence-ratio scoring on
// short task names, which is what the fuzzy task cutoff was tuned for.
type Similarity struct {
	metric strutil.StringMetric
}

// Option configures a Similarity.
type Option func(*Similarity)

// WithMetric swaps the string metric.
func WithMetric(m strutil.StringMetric) Option {
	return func(s *Similarity) {
		s.metric = m
	}
}

// New creates a Similarity with the default Sorensen-Dice metric.
func New(opts ...Option) *Similarity {
	s := &Similarity{metric: metrics.NewSorensenDice()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Score returns the similarity of a and b on a 0-1 scale.
func (s *Similarity) Score(a, b string) float64 {
	return strutil.Similarity(a, b, s.metric)
}
