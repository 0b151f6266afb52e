// Package server exposes the classifier over HTTP.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/opmodel/bfhl/internal/classify"
	"github.com/opmodel/bfhl/internal/config"
	oerrors "github.com/opmodel/bfhl/internal/errors"
	"github.com/opmodel/bfhl/internal/output"
)

// Server serves POST /bfhl, GET /healthz and GET /metrics.
type Server struct {
	cfg      config.ServerConfig
	identity classify.Identity
	pipeline *classify.Pipeline
	registry *prometheus.Registry
	metrics  *Metrics
	handler  http.Handler
}

// Option configures a Server.
type Option func(*Server)

// WithPipeline replaces the default classification pipeline.
func WithPipeline(p *classify.Pipeline) Option {
	return func(s *Server) {
		s.pipeline = p
	}
}

// WithRegistry registers metrics on reg instead of a fresh registry.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(s *Server) {
		s.registry = reg
	}
}

// New creates a server answering with identity in every result.
func New(cfg config.ServerConfig, identity classify.Identity, opts ...Option) *Server {
	s := &Server{
		cfg:      cfg,
		identity: identity,
		pipeline: classify.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.registry == nil {
		s.registry = prometheus.NewRegistry()
		s.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	s.metrics = NewMetrics(s.registry)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /bfhl", s.handleBFHL)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	s.handler = s.withRequestContext(mux)
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run listens on the configured address and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return oerrors.WrapServer(err, "listening on "+s.cfg.Addr)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done, then shuts down gracefully within
// the configured shutdown timeout. It takes ownership of ln.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: s.cfg.ReadTimeout,
		ReadTimeout:       s.cfg.ReadTimeout,
		WriteTimeout:      s.cfg.WriteTimeout,
		IdleTimeout:       s.cfg.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		output.Info("listening", "addr", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return oerrors.WrapServer(err, "serving HTTP")
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		output.Info("shutting down", "timeout", s.cfg.ShutdownTimeout)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return oerrors.WrapServer(err, "shutting down")
		}
		return nil
	})

	return g.Wait()
}
