// Package cmd provides CLI command implementations.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	cmdconfig "github.com/opmodel/bfhl/internal/cmd/config"
	"github.com/opmodel/bfhl/internal/cmdtypes"
	"github.com/opmodel/bfhl/internal/cmdutil"
	"github.com/opmodel/bfhl/internal/config"
	"github.com/opmodel/bfhl/internal/output"
)

// rootFlags holds the persistent flags shared by every command.
type rootFlags struct {
	config     string
	verbose    bool
	timestamps bool
	logFormat  string
}

// NewRootCmd creates the root command for the bfhl CLI.
func NewRootCmd() *cobra.Command {
	var flags rootFlags
	cfg := &cmdtypes.GlobalConfig{}

	rootCmd := &cobra.Command{
		Use:   "bfhl",
		Short: "Token classification service",
		Long: `bfhl classifies lists of tokens into even numbers, odd numbers,
alphabetic words and special tokens, sums the numbers and derives a
transform string from the letters.

Run it as an HTTP service with 'bfhl serve' or one-shot with 'bfhl classify'.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			return initializeGlobals(c, cfg, &flags)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.config, "config", "", "Path to config file (env: BFHL_CONFIG)")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output")
	pf.BoolVar(&flags.timestamps, "timestamps", true, "Show timestamps in log output")
	pf.StringVar(&flags.logFormat, "log-format", config.LogFormatText, "Log format: text, json")
	cmdutil.AnnotateConfigKey(pf, "timestamps", config.KeyLogTimestamps)
	cmdutil.AnnotateConfigKey(pf, "log-format", config.KeyLogFormat)

	rootCmd.AddCommand(NewServeCmd(cfg))
	rootCmd.AddCommand(NewClassifyCmd(cfg))
	rootCmd.AddCommand(cmdconfig.NewConfigCmd(cfg))
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals loads configuration and sets up logging.
func initializeGlobals(c *cobra.Command, g *cmdtypes.GlobalConfig, flags *rootFlags) error {
	configPath, source, err := config.ResolveConfigPath(flags.config)
	if err != nil {
		return fmt.Errorf("resolving config path: %w", err)
	}

	loader := config.NewLoader()
	if err := cmdutil.BindConfigFlags(c.Flags(), loader); err != nil {
		return err
	}

	// Don't fail here; commands that don't need config still work.
	loaded, loadErr := loader.Load(configPath)

	g.Config = loaded
	g.Loader = loader
	g.ConfigPath = loader.ConfigFile()
	g.ConfigSource = source
	g.LoadErr = loadErr
	g.Verbose = flags.verbose

	// flag > env > config > default, resolved by the loader when it succeeded
	logCfg := output.LogConfig{
		Verbose: flags.verbose,
		Writer:  c.ErrOrStderr(),
	}
	if loaded != nil {
		logCfg.Timestamps = output.BoolPtr(loaded.Log.Timestamps)
		logCfg.JSON = loaded.Log.Format == config.LogFormatJSON
	} else {
		logCfg.Timestamps = output.BoolPtr(flags.timestamps)
		logCfg.JSON = flags.logFormat == config.LogFormatJSON
	}
	output.SetupLogging(logCfg)

	if loadErr != nil {
		output.Debug("config load error", "error", loadErr)
	}

	if flags.verbose {
		output.Debug("initializing CLI",
			"config", g.ConfigPath,
			"source", source,
			"file_read", loader.FileRead(),
		)
		config.LogResolvedValues(loader.Resolve())
	}

	return nil
}
