package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	cdpagent "github.com/pswitchy/CDP-Support-Chatbot"
	"github.com/pswitchy/CDP-Support-Chatbot/agent"
	"github.com/pswitchy/CDP-Support-Chatbot/fs"
	"github.com/pswitchy/CDP-Support-Chatbot/gocache"
	"github.com/pswitchy/CDP-Support-Chatbot/goquery"
	cdphttp "github.com/pswitchy/CDP-Support-Chatbot/http"
	"github.com/pswitchy/CDP-Support-Chatbot/ollama"
	cdpslog "github.com/pswitchy/CDP-Support-Chatbot/slog"
	"github.com/pswitchy/CDP-Support-Chatbot/strutil"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Logger used by all components. Replaceable for testing.
	Logger *slog.Logger

	// Services for end-to-end testing.
	Catalog *cdpagent.Catalog
	Agent   cdpagent.QuestionAnswerer
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Logger: slog.New(slog.NewJSONHandler(os.Stderr, nil)),
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// A .env file is optional; environment variables win either way.
	_ = godotenv.Load()

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: m.Logger,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("cdpagent"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		args = []string{"serve"}
	}
	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	m.Catalog = fs.LoadCatalog(cli.Globals.Catalog, m.Logger)
	deps.Catalog = m.Catalog

	model, err := ollama.NewModel(cli.Globals.OllamaHost, cli.Globals.OllamaModel)
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Check OLLAMA_HOST points at a running Ollama server")
		return fmt.Errorf("failed to connect to Ollama at %q: %w", cli.Globals.OllamaHost, err)
	}

	classifier := cdpslog.NewLoggingClassifier(
		ollama.NewClassifier(model, m.Catalog, strutil.New()), m.Logger)
	resolver := cdpslog.NewLoggingResolver(
		agent.NewResolver(m.Catalog, gocache.New(), cdphttp.NewFetcher(), goquery.NewExtractor()),
		m.Logger)
	synthesizer := ollama.NewSynthesizer(model)

	m.Agent = agent.NewAgent(classifier, resolver, synthesizer, m.Catalog,
		agent.WithLogger(m.Logger))
	deps.Agent = m.Agent

	return kongCtx.Run(deps)
}
