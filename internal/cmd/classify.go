package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/opmodel/bfhl/internal/classify"
	"github.com/opmodel/bfhl/internal/cmdtypes"
	"github.com/opmodel/bfhl/internal/cmdutil"
	"github.com/opmodel/bfhl/internal/output"
)

// NewClassifyCmd creates the classify command.
func NewClassifyCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var in cmdutil.InputFlags

	c := &cobra.Command{
		Use:   "classify [tokens...]",
		Short: "Classify tokens without starting the server",
		Long: `Classify a token list and print the result.

Tokens are taken from the arguments as strings. Without arguments a JSON
document ({"data": [...]} or a bare array) is read from --file or from
piped stdin. Put -- before tokens that start with a dash.

Examples:
  # Classify arguments
  bfhl classify a 1 334 4 R '$'

  # Negative numbers
  bfhl classify -- -3 4

  # Classify a request body as a table
  bfhl classify -f request.json -o table

  # Pipe a request body
  echo '{"data": ["A", "b", "7"]}' | bfhl classify -o yaml`,
		RunE: func(c *cobra.Command, args []string) error {
			return runClassify(c, args, cfg, &in)
		},
	}

	in.AddTo(c)

	return c
}

func runClassify(c *cobra.Command, args []string, g *cmdtypes.GlobalConfig, in *cmdutil.InputFlags) error {
	format, err := cmdutil.ParseOutputFormat(in.Output)
	if err != nil {
		return err
	}

	cfg, err := g.RequireConfig()
	if err != nil {
		return err
	}

	stdin := c.InOrStdin()
	isTTY := false
	if f, ok := stdin.(*os.File); ok {
		isTTY = cmdutil.IsTerminal(f)
	}

	tokens, err := cmdutil.ReadTokens(cmdutil.Input{
		Args:       args,
		File:       in.File,
		Stdin:      stdin,
		StdinIsTTY: isTTY,
	})
	if err != nil {
		return err
	}

	res := classify.Process(tokens, cfg.Identity.Identity())
	if res.Cause != nil {
		output.Warn("classification failed", "error", res.Cause)
	}
	output.Debug("classified", "tokens", len(tokens), "success", res.IsSuccess)

	return output.WriteResult(c.OutOrStdout(), res, format)
}
