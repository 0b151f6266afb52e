package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/opmodel/bfhl/internal/cmdtypes"
	"github.com/opmodel/bfhl/internal/cmdutil"
	"github.com/opmodel/bfhl/internal/output"
	"github.com/opmodel/bfhl/internal/server"
)

// NewServeCmd creates the serve command.
func NewServeCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var sf cmdutil.ServeFlags

	c := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP service",
		Long: `Run the bfhl HTTP service.

Endpoints:
  POST /bfhl      classify {"data": [...]}
  GET  /healthz   liveness
  GET  /metrics   Prometheus metrics

The server shuts down gracefully on SIGINT or SIGTERM.

Examples:
  # Listen on the configured address
  bfhl serve

  # Override the listen address
  bfhl serve --addr 127.0.0.1:3000`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runServe(c, cfg)
		},
	}

	sf.AddTo(c)

	return c
}

func runServe(c *cobra.Command, g *cmdtypes.GlobalConfig) error {
	cfg, err := g.RequireConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(c.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	identity := cfg.Identity.Identity()
	output.Info("starting bfhl",
		"addr", cfg.Server.Addr,
		"user_id", identity.UserID(),
		"config", g.ConfigPath,
	)

	return server.New(cfg.Server, identity).Run(ctx)
}
