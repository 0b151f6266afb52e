// Package cmdtypes provides shared types for the cmd package and its sub-packages.
// It is separate from internal/cmd to avoid import cycles between internal/cmd
// and its sub-packages (internal/cmd/config).
package cmdtypes

import (
	"github.com/opmodel/bfhl/internal/config"
	oerrors "github.com/opmodel/bfhl/internal/errors"
)

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is populated once at startup and passed explicitly into every sub-command
// constructor.
type GlobalConfig struct {
	// Config is the merged configuration. Nil if loading failed.
	Config *config.Config

	// Loader produced Config and reports the source of each value.
	Loader *config.Loader

	// ConfigPath is the resolved config file path.
	ConfigPath string

	// ConfigSource tells whether ConfigPath came from --config, BFHL_CONFIG
	// or the default location.
	ConfigSource config.ConfigSource

	// LoadErr is the error from loading the config file, if any. Commands
	// that do not need configuration ignore it.
	LoadErr error

	Verbose bool
}

// Exit codes, aliased from internal/errors.
const (
	ExitSuccess         = oerrors.ExitSuccess
	ExitGeneralError    = oerrors.ExitGeneralError
	ExitValidationError = oerrors.ExitValidationError
	ExitNotFound        = oerrors.ExitNotFound
	ExitServerError     = oerrors.ExitServerError
)

// ExitError is a type alias to internal/errors.ExitError.
type ExitError = oerrors.ExitError

// RequireConfig returns the loaded configuration after validating it
// against the schema. Load and validation failures become exit errors.
func (g *GlobalConfig) RequireConfig() (*config.Config, error) {
	if g.LoadErr != nil {
		return nil, oerrors.NewExitError(g.LoadErr, ExitGeneralError)
	}
	if g.Config == nil {
		return nil, oerrors.NewExitError(oerrors.Wrap(oerrors.ErrNotFound, "configuration not loaded"), ExitGeneralError)
	}

	validator, err := config.NewValidator()
	if err != nil {
		return nil, err
	}
	if err := validator.Validate(g.Config); err != nil {
		return nil, oerrors.NewExitError(err, ExitValidationError)
	}

	return g.Config, nil
}
