package ollama

import (
	"context"
	"fmt"
	"strings"

	cdpagent "github.com/pswitchy/CDP-Support-Chatbot"
	"github.com/tmc/langchaingo/llms"
)

// Ensure Classifier implements cdpagent.Classifier at compile time.
var _ cdpagent.Classifier = (*Classifier)(nil)

// Classifier identifies the CDP and task a question refers to by
// prompting the model and validating its reply against the catalog.
type Classifier struct {
	model      llms.Model
	catalog    *cdpagent.Catalog
	similarity cdpagent.Similarity
}

// NewClassifier creates a new Classifier.
func NewClassifier(model llms.Model, catalog *cdpagent.Catalog, similarity cdpagent.Similarity) *Classifier {
	return &Classifier{model: model, catalog: catalog, similarity: similarity}
}

// Classify identifies the CDP platform and task mentioned in question.
// A CDP outside the catalog key set clears the whole classification;
// an unmatched task degrades independently of the CDP.
func (c *Classifier) Classify(ctx context.Context, question string) (cdpagent.Classification, error) {
	if question == "" {
		return cdpagent.Classification{}, cdpagent.Errorf(cdpagent.EINVALID, "question required")
	}

	prompt := BuildClassifierPrompt(c.catalog.CDPs(), question)

	reply, err := llms.GenerateFromSinglePrompt(ctx, c.model, prompt)
	if err != nil {
		return cdpagent.Classification{}, cdpagent.Errorf(cdpagent.EUNAVAILABLE, "classification failed: %v", err)
	}

	cdp, task := ParseClassifierReply(reply)
	if !c.catalog.Valid(cdp) {
		// Untrusted model output must never leak into downstream lookups.
		return cdpagent.Classification{}, nil
	}
	if task != "" {
		task = c.canonicalTask(cdp, task)
	}

	return cdpagent.Classification{CDP: cdp, Task: task}, nil
}

// BuildClassifierPrompt builds the extraction prompt listing the valid
// CDP names and the required two-line reply format.
func BuildClassifierPrompt(cdps []string, question string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Extract the CDP platform and specific task from this question: '%s'.\n\n", question)
	fmt.Fprintf(&sb, "Valid CDPs: %s\n\n", strings.Join(cdps, ", "))
	sb.WriteString("Reply with ONLY two lines:\n")
	sb.WriteString("CDP: [name of CDP or None if unclear]\n")
	sb.WriteString("Task: [specific task or None if unclear]\n")
	return sb.String()
}

// ParseClassifierReply scans the reply for "CDP:" and "Task:" lines.
// The first match per prefix wins; a literal "None" maps to absent.
func ParseClassifierReply(reply string) (cdp, task string) {
	var cdpSeen, taskSeen bool
	for _, line := range strings.Split(reply, "\n") {
		line = strings.TrimSpace(line)
		if v, ok := strings.CutPrefix(line, "CDP:"); ok && !cdpSeen {
			cdp = normalizeLabel(v)
			cdpSeen = true
		} else if v, ok := strings.CutPrefix(line, "Task:"); ok && !taskSeen {
			task = normalizeLabel(v)
			taskSeen = true
		}
	}
	return cdp, task
}

func normalizeLabel(v string) string {
	v = strings.TrimSpace(v)
	if v == "None" {
		return ""
	}
	return v
}

// canonicalTask fuzzy-matches the returned task name against the tasks
// registered for cdp. At or above the cutoff the catalog's original-case
// name wins; below it the model's wording is kept as-is.
func (c *Classifier) canonicalTask(cdp, task string) string {
	var best string
	var bestScore float64
	for _, name := range c.catalog.TaskNames(cdp) {
		score := c.similarity.Score(strings.ToLower(task), strings.ToLower(name))
		if score > bestScore {
			best, bestScore = name, score
		}
	}
	if bestScore >= cdpagent.TaskMatchCutoff {
		return best
	}
	return task
}
