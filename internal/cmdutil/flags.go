// Package cmdutil provides shared command utilities for bfhl subcommands.
// It centralizes flag groups, config-key flag binding, input reading and
// error printing helpers.
package cmdutil

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/opmodel/bfhl/internal/config"
	"github.com/opmodel/bfhl/internal/output"
)

// ConfigKeyAnnotation marks a flag as an override for a config key.
const ConfigKeyAnnotation = "bfhl/config-key"

// AnnotateConfigKey marks flag name on fs as overriding key.
func AnnotateConfigKey(fs *pflag.FlagSet, name, key string) {
	if err := fs.SetAnnotation(name, ConfigKeyAnnotation, []string{key}); err != nil {
		panic(fmt.Sprintf("annotating --%s: %v", name, err))
	}
}

// BindConfigFlags binds every annotated flag in fs to its config key.
func BindConfigFlags(fs *pflag.FlagSet, loader *config.Loader) error {
	var bindErr error
	fs.VisitAll(func(f *pflag.Flag) {
		keys := f.Annotations[ConfigKeyAnnotation]
		if bindErr != nil || len(keys) == 0 {
			return
		}
		bindErr = loader.BindFlag(keys[0], f)
	})
	return bindErr
}

// ServeFlags holds flags for the serve command.
type ServeFlags struct {
	Addr string
}

// AddTo registers the serve flags on the given cobra command.
func (f *ServeFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.Addr, "addr", config.DefaultConfig().Server.Addr,
		"Listen address (env: BFHL_SERVER_ADDR)")
	AnnotateConfigKey(cmd.Flags(), "addr", config.KeyAddr)
}

// InputFlags holds flags for commands that read a token list
// and print a result.
type InputFlags struct {
	File   string
	Output string
}

// AddTo registers the input flags on the given cobra command.
func (f *InputFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.File, "file", "f", "",
		`JSON file with {"data": [...]} or a bare array ("-" for stdin)`)
	cmd.Flags().StringVarP(&f.Output, "output", "o", string(output.FormatJSON),
		"Output format: json, yaml, table")
}
