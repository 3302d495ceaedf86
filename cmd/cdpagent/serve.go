package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	cdphttp "github.com/pswitchy/CDP-Support-Chatbot/http"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr      string `env:"CDP_AGENT_ADDR" default:":8000" help:"Address to listen on"`
	StaticDir string `default:"static" help:"Directory with the web UI files"`
}

// Run executes the serve command. It blocks until the server fails or a
// termination signal arrives, then shuts down gracefully.
func (c *ServeCmd) Run(deps *Dependencies) error {
	ctx, stop := signal.NotifyContext(deps.Ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := cdphttp.NewServer(deps.Catalog, deps.Agent,
		cdphttp.WithLogger(deps.Logger),
		cdphttp.WithStaticDir(c.StaticDir),
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		deps.Logger.Info("starting HTTP server", "addr", c.Addr)
		return server.ListenAndServe(c.Addr)
	})
	g.Go(func() error {
		<-ctx.Done()
		deps.Logger.Info("shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
