package cdpagent

import "context"

// Synthesizer generates the final answer from the question and the
// retrieved documentation text.
type Synthesizer interface {
	// Synthesize answers question using docText as the only source of
	// truth. Implementations must bound the documentation passed to the
	// model; the classification supplies the CDP/task context header.
	Synthesize(ctx context.Context, question, docText string, c Classification) (string, error)
}
