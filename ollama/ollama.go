// Package ollama implements the language-model backed components
// (intent classification and answer synthesis) using langchaingo's
// Ollama client.
package ollama

import (
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
)

// Defaults used when the corresponding environment settings are unset.
const (
	DefaultHost  = "http://localhost:11434"
	DefaultModel = "llama2"
)

// NewModel connects to the Ollama server at host using the named model.
// Empty arguments fall back to the defaults.
func NewModel(host, model string) (llms.Model, error) {
	if host == "" {
		host = DefaultHost
	}
	if model == "" {
		model = DefaultModel
	}
	return ollama.New(ollama.WithServerURL(host), ollama.WithModel(model))
}
