package config

import (
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sourcesByKey(values []ResolvedValue) map[string]ConfigSource {
	out := make(map[string]ConfigSource, len(values))
	for _, v := range values {
		out[v.Key] = v.Source
	}
	return out
}

func TestLoaderResolve(t *testing.T) {
	t.Setenv("BFHL_IDENTITY_EMAIL", "env@example.com")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("addr", ":8080", "")
	require.NoError(t, fs.Parse([]string{"--addr=:9999"}))

	loader := NewLoader()
	require.NoError(t, loader.BindFlag(KeyAddr, fs.Lookup("addr")))
	_, err := loader.Load(writeConfig(t, "identity:\n  fullName: File Name\n"))
	require.NoError(t, err)

	values := loader.Resolve()
	require.Len(t, values, len(Keys()))

	sources := sourcesByKey(values)
	assert.Equal(t, SourceFlag, sources[KeyAddr])
	assert.Equal(t, SourceEnv, sources[KeyEmail])
	assert.Equal(t, SourceConfig, sources[KeyFullName])
	assert.Equal(t, SourceDefault, sources[KeyDOB])

	for _, v := range values {
		if v.Key == KeyAddr {
			assert.Equal(t, ":9999", v.Value)
		}
	}
}

func TestLoaderResolve_UnchangedFlagIsNotFlagSource(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("addr", ":8080", "")
	require.NoError(t, fs.Parse(nil))

	loader := NewLoader()
	require.NoError(t, loader.BindFlag(KeyAddr, fs.Lookup("addr")))
	_, err := loader.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, SourceDefault, sourcesByKey(loader.Resolve())[KeyAddr])
}

func TestResolveConfigPath(t *testing.T) {
	t.Run("flag wins", func(t *testing.T) {
		t.Setenv(EnvConfig, "/env/config.yaml")
		path, source, err := ResolveConfigPath("/flag/config.yaml")
		require.NoError(t, err)
		assert.Equal(t, "/flag/config.yaml", path)
		assert.Equal(t, SourceFlag, source)
	})

	t.Run("env next", func(t *testing.T) {
		t.Setenv(EnvConfig, "/env/config.yaml")
		path, source, err := ResolveConfigPath("")
		require.NoError(t, err)
		assert.Equal(t, "/env/config.yaml", path)
		assert.Equal(t, SourceEnv, source)
	})

	t.Run("default last", func(t *testing.T) {
		t.Setenv(EnvConfig, "")
		path, source, err := ResolveConfigPath("")
		require.NoError(t, err)
		assert.Equal(t, SourceDefault, source)
		assert.Equal(t, filepath.Join(".bfhl", "config.yaml"), filepath.Join(filepath.Base(filepath.Dir(path)), filepath.Base(path)))
	})
}
