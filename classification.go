package cdpagent

import "context"

// Classification is the outcome of intent classification. The zero value
// means the question could not be attributed to a known CDP. An empty Task
// with a non-empty CDP means the platform was identified but no specific
// documented task was.
type Classification struct {
	CDP  string
	Task string
}

// Identified reports whether a known CDP was recognized.
func (c Classification) Identified() bool {
	return c.CDP != ""
}

// HasTask reports whether a specific task was recognized.
func (c Classification) HasTask() bool {
	return c.Task != ""
}

// Classifier identifies the CDP platform and specific task mentioned in a
// free-text question.
type Classifier interface {
	// Classify returns the classification for question. A CDP absent from
	// the catalog never leaks into the result: implementations must return
	// the zero Classification instead. Task may degrade to empty
	// independently of CDP.
	Classify(ctx context.Context, question string) (Classification, error)
}
