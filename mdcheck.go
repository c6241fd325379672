// Package mdcheck assembles the Markdown lint and MDX validation service: a
// small local HTTP endpoint that a documentation tool posts document bodies
// to. Host applications can embed the handler on their own mux through
// Handler, or run the fixed-port server with Start.
package mdcheck

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/goliatone/go-mdcheck/internal/httpapi"
	"github.com/goliatone/go-mdcheck/internal/lint"
	"github.com/goliatone/go-mdcheck/internal/logging"
	"github.com/goliatone/go-mdcheck/internal/mdx"
	"github.com/goliatone/go-mdcheck/pkg/interfaces"
)

// Option customises service construction.
type Option func(*serviceOptions)

type serviceOptions struct {
	provider interfaces.LoggerProvider
}

// WithLoggerProvider injects the logging backend. Without it the service
// stays silent; every component falls back to a no-op logger.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(opts *serviceOptions) {
		opts.provider = provider
	}
}

// Service wires the lint engine, the MDX compiler, and the HTTP API around
// one immutable configuration.
type Service struct {
	cfg    Config
	api    *httpapi.API
	logger interfaces.Logger
}

// New validates the configuration and builds the service. The configuration
// is treated as immutable from this point on and shared read-only across all
// concurrent requests.
func New(cfg Config, opts ...Option) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	options := serviceOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	engine := lint.NewEngine(cfg.Lint, logging.LintLogger(options.provider))
	compiler := mdx.NewCompiler(logging.MDXLogger(options.provider))
	api := httpapi.New(engine, compiler, cfg.Lint, logging.HTTPLogger(options.provider))

	return &Service{
		cfg:    cfg,
		api:    api,
		logger: logging.ModuleLogger(options.provider, ""),
	}, nil
}

// Handler exposes the request router for hosts that mount the service on
// their own server.
func (s *Service) Handler() http.Handler {
	return s.api
}

// Addr returns the listen address derived from the configured port.
func (s *Service) Addr() string {
	return fmt.Sprintf("127.0.0.1:%d", s.cfg.Server.Port)
}

// Start runs the HTTP server until the context is cancelled, then shuts it
// down gracefully. In-flight requests get a short drain window; anything
// still running afterwards is abandoned, matching the service's
// no-compensation model.
func (s *Service) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:    s.Addr(),
		Handler: s.api,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server.listening", "addr", server.Addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		s.logger.Warn("server.shutdown_forced", "error", err)
		return err
	}
	s.logger.Info("server.stopped")
	return nil
}
