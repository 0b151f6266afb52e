package config

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/opmodel/bfhl/internal/cmdtypes"
	"github.com/opmodel/bfhl/internal/config"
	"github.com/opmodel/bfhl/internal/output"
)

// NewConfigShowCmd creates the config show command.
func NewConfigShowCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the resolved configuration",
		Long: `Show every configuration value and where it came from.

Sources, highest precedence first:
  flag     command-line flag
  env      BFHL_* environment variable
  config   configuration file
  default  built-in default`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runShow(c, cfg)
		},
	}
}

func runShow(c *cobra.Command, g *cmdtypes.GlobalConfig) error {
	if g.LoadErr != nil {
		return g.LoadErr
	}

	file := g.ConfigPath
	if !g.Loader.FileRead() {
		file += " (not found)"
	}
	fmt.Fprintf(c.OutOrStdout(), "Config file: %s [%s]\n", file, g.ConfigSource)

	tbl := output.NewTable("KEY", "VALUE", "SOURCE")
	for _, v := range g.Loader.Resolve() {
		tbl.Row(v.Key, formatValue(v.Value), sourceStyle(v.Source))
	}
	fmt.Fprintln(c.OutOrStdout(), tbl.String())
	return nil
}

func formatValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return output.StyleDim.Render("<unset>")
	case time.Duration:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}

func sourceStyle(s config.ConfigSource) string {
	if s == config.SourceDefault {
		return output.StyleDim.Render(string(s))
	}
	return output.StyleNoun.Render(string(s))
}
