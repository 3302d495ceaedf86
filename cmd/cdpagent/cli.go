package main

import (
	"context"
	"io"
	"log/slog"

	cdpagent "github.com/pswitchy/CDP-Support-Chatbot"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Catalog *cdpagent.Catalog
	Agent   cdpagent.QuestionAnswerer
}

// Globals are flags shared by all commands.
type Globals struct {
	Catalog     string `env:"CDP_TASKS_FILE" default:"cdp_tasks.json" help:"Path to the CDP task catalog"`
	OllamaHost  string `env:"OLLAMA_HOST" default:"http://localhost:11434" help:"Ollama server URL"`
	OllamaModel string `env:"OLLAMA_MODEL" default:"llama2" help:"Ollama model name"`
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Globals

	Serve ServeCmd `cmd:"" default:"1" help:"Run the HTTP server"`
	Ask   AskCmd   `cmd:"" help:"Ask a single question from the command line"`
	Cdps  CdpsCmd  `cmd:"" help:"List the supported CDP platforms"`
}
