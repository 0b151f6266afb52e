package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opmodel/bfhl/internal/testutil"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	return testutil.WriteFile(t, t.TempDir(), "config.yaml", content)
}

func TestNewLoader(t *testing.T) {
	loader := NewLoader()
	assert.NotNil(t, loader)
	assert.NotNil(t, loader.v)
}

func TestLoaderLoad(t *testing.T) {
	t.Run("loads config from file", func(t *testing.T) {
		configFile := writeConfig(t, `
identity:
  fullName: Ada Lovelace
  dob: "10121815"
  email: ada@example.com
  rollNumber: AL1815
server:
  addr: 127.0.0.1:9090
  readTimeout: 3s
  maxBodyBytes: 2048
log:
  timestamps: false
  format: json
`)

		loader := NewLoader()
		cfg, err := loader.Load(configFile)

		require.NoError(t, err)
		assert.True(t, loader.FileRead())
		assert.Equal(t, configFile, loader.ConfigFile())
		assert.Equal(t, "Ada Lovelace", cfg.Identity.FullName)
		assert.Equal(t, "10121815", cfg.Identity.DOB)
		assert.Equal(t, "ada@example.com", cfg.Identity.Email)
		assert.Equal(t, "AL1815", cfg.Identity.RollNumber)
		assert.Equal(t, "127.0.0.1:9090", cfg.Server.Addr)
		assert.Equal(t, 3*time.Second, cfg.Server.ReadTimeout)
		assert.Equal(t, int64(2048), cfg.Server.MaxBodyBytes)
		assert.False(t, cfg.Log.Timestamps)
		assert.Equal(t, "json", cfg.Log.Format)

		// untouched keys keep their defaults
		assert.Equal(t, 10*time.Second, cfg.Server.WriteTimeout)
	})

	t.Run("returns defaults for missing file", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "nonexistent.yaml")

		loader := NewLoader()
		cfg, err := loader.Load(configFile)

		require.NoError(t, err)
		assert.False(t, loader.FileRead())
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("loads from environment variables", func(t *testing.T) {
		t.Setenv("BFHL_IDENTITY_FULLNAME", "Env Name")
		t.Setenv("BFHL_SERVER_ADDR", ":7070")
		t.Setenv("BFHL_SERVER_SHUTDOWNTIMEOUT", "1m")

		loader := NewLoader()
		cfg, err := loader.Load(writeConfig(t, ""))

		require.NoError(t, err)
		assert.Equal(t, "Env Name", cfg.Identity.FullName)
		assert.Equal(t, ":7070", cfg.Server.Addr)
		assert.Equal(t, time.Minute, cfg.Server.ShutdownTimeout)
	})

	t.Run("env vars override file values", func(t *testing.T) {
		t.Setenv("BFHL_IDENTITY_EMAIL", "env@example.com")

		loader := NewLoader()
		cfg, err := loader.Load(writeConfig(t, "identity:\n  email: file@example.com\n"))

		require.NoError(t, err)
		assert.Equal(t, "env@example.com", cfg.Identity.Email)
	})

	t.Run("flag overrides env", func(t *testing.T) {
		t.Setenv("BFHL_SERVER_ADDR", ":7070")

		fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
		fs.String("addr", ":8080", "")
		require.NoError(t, fs.Parse([]string{"--addr", ":6060"}))

		loader := NewLoader()
		require.NoError(t, loader.BindFlag(KeyAddr, fs.Lookup("addr")))
		cfg, err := loader.Load(writeConfig(t, ""))

		require.NoError(t, err)
		assert.Equal(t, ":6060", cfg.Server.Addr)
	})

	t.Run("invalid yaml is an error", func(t *testing.T) {
		loader := NewLoader()
		_, err := loader.Load(writeConfig(t, "identity: [unclosed"))
		assert.Error(t, err)
	})

	t.Run("uses BFHL_CONFIG when no path given", func(t *testing.T) {
		configFile := writeConfig(t, "identity:\n  rollNumber: ENV-PATH\n")
		t.Setenv(EnvConfig, configFile)

		cfg, err := NewLoader().Load("")
		require.NoError(t, err)
		assert.Equal(t, "ENV-PATH", cfg.Identity.RollNumber)
	})
}

func TestBindFlag_NilFlag(t *testing.T) {
	err := NewLoader().BindFlag(KeyAddr, nil)
	assert.Error(t, err)
}

func TestConfigFileExists(t *testing.T) {
	t.Run("returns true for existing file", func(t *testing.T) {
		exists, err := ConfigFileExists(writeConfig(t, ""))
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("returns false for missing file", func(t *testing.T) {
		exists, err := ConfigFileExists(filepath.Join(t.TempDir(), "nonexistent.yaml"))
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestExpandPath(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"/abs/path", "/abs/path"},
		{"~", homeDir},
		{"~/.bfhl/config.yaml", filepath.Join(homeDir, ".bfhl/config.yaml")},
		{"~other/file", "~other/file"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ExpandPath(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
