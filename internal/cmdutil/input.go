package cmdutil

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/opmodel/bfhl/internal/classify"
	oerrors "github.com/opmodel/bfhl/internal/errors"
)

// Input is where a command reads its token list from.
type Input struct {
	Args  []string
	File  string
	Stdin io.Reader

	// StdinIsTTY suppresses reading an interactive stdin.
	StdinIsTTY bool
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// ReadTokens resolves the token list. Arguments are taken as literal
// string tokens. Otherwise a JSON document is read from --file, or from
// stdin when it is piped.
func ReadTokens(in Input) ([]classify.Token, error) {
	if len(in.Args) > 0 {
		if in.File != "" {
			return nil, oerrors.NewValidationError("tokens and --file are mutually exclusive", "", "file",
				"Pass tokens as arguments or in a file, not both.")
		}
		return classify.Tokens(in.Args...), nil
	}

	var (
		data []byte
		err  error
	)
	switch {
	case in.File == "-":
		data, err = io.ReadAll(in.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
	case in.File != "":
		data, err = os.ReadFile(in.File)
		if os.IsNotExist(err) {
			return nil, oerrors.NewNotFoundError("input file not found", in.File, "")
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", in.File, err)
		}
	case in.Stdin != nil && !in.StdinIsTTY:
		data, err = io.ReadAll(in.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
	default:
		return nil, oerrors.NewValidationError("no input", "", "",
			`Pass tokens as arguments, use --file, or pipe {"data": [...]} on stdin.`)
	}

	tokens, err := classify.DecodeTokens(data)
	if err != nil {
		return nil, oerrors.NewValidationError(err.Error(), in.File, "data", "")
	}
	return tokens, nil
}
