// Command mdserve runs the local Markdown lint and MDX validation server.
// It listens on the fixed local port, accepts document bodies over POST,
// and shuts down cleanly on SIGINT or SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	mdcheck "github.com/goliatone/go-mdcheck"
	"github.com/goliatone/go-mdcheck/internal/logging/gologger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "mdserve: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := mdcheck.DefaultConfig()

	provider, err := gologger.NewProvider(gologger.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		AddSource: cfg.Logging.AddSource,
	})
	if err != nil {
		return err
	}

	svc, err := mdcheck.New(cfg, mdcheck.WithLoggerProvider(provider))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := svc.Start(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
