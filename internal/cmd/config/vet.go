package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opmodel/bfhl/internal/cmdtypes"
	"github.com/opmodel/bfhl/internal/cmdutil"
	"github.com/opmodel/bfhl/internal/config"
	oerrors "github.com/opmodel/bfhl/internal/errors"
	"github.com/opmodel/bfhl/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet [path]",
		Short: "Validate a configuration file",
		Long: `Validate a bfhl configuration file against the embedded schema.

BFHL_* environment overrides are applied before validation, as they are
at startup. Without a path the resolved config file is checked:
  --config flag > BFHL_CONFIG env > ~/.bfhl/config.yaml

Examples:
  # Validate default configuration
  bfhl config vet

  # Validate a specific file
  bfhl config vet ./deploy/config.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runVet(c, cfg, args)
		},
	}
}

func runVet(c *cobra.Command, g *cmdtypes.GlobalConfig, args []string) error {
	path := g.ConfigPath
	if len(args) == 1 {
		expanded, err := config.ExpandPath(args[0])
		if err != nil {
			return fmt.Errorf("expanding config path: %w", err)
		}
		path = expanded
	}

	exists, err := config.ConfigFileExists(path)
	if err != nil {
		return fmt.Errorf("checking config file: %w", err)
	}
	if !exists {
		return oerrors.NewExitError(
			oerrors.NewNotFoundError("configuration file not found", path, "Run 'bfhl config init' to create default configuration."),
			oerrors.ExitNotFound,
		)
	}

	validator, err := config.NewValidator()
	if err != nil {
		return fmt.Errorf("creating validator: %w", err)
	}

	output.Debug("validating config", "path", path)
	if err := validator.ValidateFile(path); err != nil {
		if cmdutil.PrintValidationErrors(c.ErrOrStderr(), path, err) {
			return &oerrors.ExitError{Err: err, Code: oerrors.ExitValidationError, Printed: true}
		}
		return fmt.Errorf("validating config: %w", err)
	}

	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("Config file is valid: "+path))
	return nil
}
