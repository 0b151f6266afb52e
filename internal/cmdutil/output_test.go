package cmdutil

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opmodel/bfhl/internal/config"
	oerrors "github.com/opmodel/bfhl/internal/errors"
	"github.com/opmodel/bfhl/internal/output"
)

func TestParseOutputFormat(t *testing.T) {
	f, err := ParseOutputFormat("YAML")
	require.NoError(t, err)
	assert.Equal(t, output.FormatYAML, f)

	_, err = ParseOutputFormat("xml")
	var exitErr *oerrors.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, oerrors.ExitValidationError, exitErr.Code)
	assert.Contains(t, err.Error(), "json, yaml, table")
}

func TestPrintValidationErrors(t *testing.T) {
	var buf bytes.Buffer
	err := config.ValidationErrors{
		{Field: "log.format", Message: "invalid value"},
		{Field: "server.addr", Message: "port 99999 out of range"},
	}

	ok := PrintValidationErrors(&buf, "/tmp/config.yaml", oerrors.NewExitError(err, oerrors.ExitValidationError))

	assert.True(t, ok)
	assert.Contains(t, buf.String(), "File: /tmp/config.yaml")
	assert.Contains(t, buf.String(), "log.format: invalid value")
	assert.Contains(t, buf.String(), "server.addr: port 99999 out of range")
}

func TestPrintValidationErrors_OtherError(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, PrintValidationErrors(&buf, "", errors.New("boom")))
	assert.Empty(t, buf.String())
}
