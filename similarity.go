package cdpagent

// TaskMatchCutoff is the minimum similarity score at which a
// classifier-returned task name is considered to match a catalog task.
const TaskMatchCutoff = 0.6

// Similarity scores how alike two strings are on a 0-1 scale.
// Implementations must be symmetric and score equal strings as 1.
type Similarity interface {
	Score(a, b string) float64
}
