package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opmodel/bfhl/internal/cmdtypes"
	"github.com/opmodel/bfhl/internal/config"
	oerrors "github.com/opmodel/bfhl/internal/errors"
	"github.com/opmodel/bfhl/internal/testutil"
)

// globalFor loads path the way the root command does.
func globalFor(t *testing.T, path string) *cmdtypes.GlobalConfig {
	t.Helper()
	loader := config.NewLoader()
	cfg, err := loader.Load(path)
	return &cmdtypes.GlobalConfig{
		Config:       cfg,
		Loader:       loader,
		ConfigPath:   loader.ConfigFile(),
		ConfigSource: config.SourceFlag,
		LoadErr:      err,
	}
}

func run(t *testing.T, c *cobra.Command, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	c.SetOut(&stdout)
	c.SetErr(&stderr)
	c.SetArgs(args)
	err := c.Execute()
	return stdout.String(), stderr.String(), err
}

func TestNewConfigCmd(t *testing.T) {
	c := NewConfigCmd(&cmdtypes.GlobalConfig{})

	var names []string
	for _, sub := range c.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"init", "vet", "show"}, names)
}

func TestConfigInit(t *testing.T) {
	testutil.IsolateEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	stdout, _, err := run(t, NewConfigInitCmd(globalFor(t, path)))
	require.NoError(t, err)
	assert.Contains(t, stdout, "Config file created: "+path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	// the written file loads back to the defaults
	g := globalFor(t, path)
	require.NoError(t, g.LoadErr)
	assert.True(t, g.Loader.FileRead())
	assert.Equal(t, *config.DefaultConfig(), *g.Config)
}

func TestConfigInit_ExistingConfig(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "config.yaml", "log:\n  format: json\n")

	_, _, err := run(t, NewConfigInitCmd(globalFor(t, path)))

	var exitErr *oerrors.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, oerrors.ExitGeneralError, exitErr.Code)
	assert.Contains(t, err.Error(), "--force")

	_, _, err = run(t, NewConfigInitCmd(globalFor(t, path)), "--force")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "format: text")
}

func TestConfigVet(t *testing.T) {
	dir := t.TempDir()
	valid := testutil.WriteFile(t, dir, "valid.yaml", "server:\n  addr: 127.0.0.1:3000\n")
	invalid := testutil.WriteFile(t, dir, "invalid.yaml", "log:\n  format: xml\nserver:\n  addr: nowhere\n")

	t.Run("valid resolved path", func(t *testing.T) {
		stdout, _, err := run(t, NewConfigVetCmd(globalFor(t, valid)))
		require.NoError(t, err)
		assert.Contains(t, stdout, "Config file is valid: "+valid)
	})

	t.Run("invalid argument path", func(t *testing.T) {
		_, stderr, err := run(t, NewConfigVetCmd(globalFor(t, valid)), invalid)

		var exitErr *oerrors.ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, oerrors.ExitValidationError, exitErr.Code)
		assert.True(t, exitErr.Printed)
		assert.Contains(t, stderr, "log.format")
		assert.Contains(t, stderr, "server.addr")
	})

	t.Run("missing", func(t *testing.T) {
		_, _, err := run(t, NewConfigVetCmd(globalFor(t, valid)), filepath.Join(dir, "nope.yaml"))

		require.Error(t, err)
		assert.Equal(t, oerrors.ExitNotFound, oerrors.ExitCodeFromError(err))
	})
}

func TestConfigShow(t *testing.T) {
	testutil.IsolateEnv(t)
	t.Setenv("BFHL_SERVER_ADDR", ":9000")
	path := testutil.WriteFile(t, t.TempDir(), "config.yaml", "identity:\n  email: jane@example.com\n")

	stdout, _, err := run(t, NewConfigShowCmd(globalFor(t, path)))

	require.NoError(t, err)
	assert.Contains(t, stdout, "Config file: "+path)
	assert.Contains(t, stdout, "jane@example.com")
	assert.Contains(t, stdout, ":9000")
	assert.Contains(t, stdout, "server.shutdownTimeout")
	assert.Contains(t, stdout, "15s")
	for _, src := range []string{"config", "env", "default"} {
		assert.Contains(t, stdout, src)
	}
}

func TestConfigShow_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.yaml")

	stdout, _, err := run(t, NewConfigShowCmd(globalFor(t, path)))

	require.NoError(t, err)
	assert.Contains(t, stdout, "(not found)")
}

func TestConfigShow_LoadError(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "broken.yaml", "server: [\n")

	_, _, err := run(t, NewConfigShowCmd(globalFor(t, path)))
	assert.Error(t, err)
}
