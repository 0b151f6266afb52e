package cmdutil

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/opmodel/bfhl/internal/config"
	oerrors "github.com/opmodel/bfhl/internal/errors"
	"github.com/opmodel/bfhl/internal/output"
)

// ParseOutputFormat validates the -o flag value.
func ParseOutputFormat(s string) (output.Format, error) {
	f := output.Format(strings.ToLower(s))
	if !f.Valid() {
		return "", oerrors.NewExitError(
			oerrors.NewValidationError(fmt.Sprintf("invalid output format %q", s), "", "output",
				"Valid formats: "+strings.Join(output.ValidFormats(), ", ")),
			oerrors.ExitValidationError,
		)
	}
	return f, nil
}

// PrintValidationErrors prints config validation errors one per line.
// It returns false when err is not a validation error.
func PrintValidationErrors(w io.Writer, path string, err error) bool {
	var verrs config.ValidationErrors
	if !errors.As(err, &verrs) {
		return false
	}

	fmt.Fprintln(w, "Error: config validation failed")
	if path != "" {
		fmt.Fprintf(w, "  File: %s\n", path)
	}
	fmt.Fprintln(w)
	for _, e := range verrs {
		fmt.Fprintf(w, "  %s: %s\n", e.Field, e.Message)
	}
	return true
}
