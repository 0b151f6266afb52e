package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/opmodel/bfhl/internal/cmdtypes"
	"github.com/opmodel/bfhl/internal/config"
	oerrors "github.com/opmodel/bfhl/internal/errors"
	"github.com/opmodel/bfhl/internal/output"
)

const configHeader = `# bfhl configuration
# Every key can be overridden with a BFHL_* environment variable,
# e.g. BFHL_SERVER_ADDR or BFHL_IDENTITY_FULLNAME.

`

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a default configuration file",
		Long: `Create a bfhl configuration file with default values.

The file is written to ~/.bfhl/config.yaml unless --config or BFHL_CONFIG
points elsewhere. An existing file is only replaced with --force.

Examples:
  # Initialize configuration
  bfhl config init

  # Overwrite existing configuration
  bfhl config init --force`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runInit(c, cfg, force)
		},
	}

	c.Flags().BoolVar(&force, "force", false, "Overwrite existing config file")

	return c
}

func runInit(c *cobra.Command, g *cmdtypes.GlobalConfig, force bool) error {
	path := g.ConfigPath

	exists, err := config.ConfigFileExists(path)
	if err != nil {
		return fmt.Errorf("checking config file: %w", err)
	}
	if exists && !force {
		return oerrors.NewExitError(
			fmt.Errorf("config file already exists at %s (use --force to overwrite)", path),
			oerrors.ExitGeneralError,
		)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	data = append([]byte(configHeader), data...)

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	output.Debug("wrote config", "path", path, "bytes", len(data))
	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("Config file created: "+path))
	return nil
}
