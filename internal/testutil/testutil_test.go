package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsolateHome(t *testing.T) {
	t.Setenv("BFHL_SERVER_ADDR", ":1")

	t.Run("isolated", func(t *testing.T) {
		home := IsolateHome(t)

		got, err := os.UserHomeDir()
		require.NoError(t, err)
		assert.Equal(t, home, got)

		_, ok := os.LookupEnv("BFHL_SERVER_ADDR")
		assert.False(t, ok)
	})

	assert.Equal(t, ":1", os.Getenv("BFHL_SERVER_ADDR"), "restored after the subtest")
}

func TestWriteConfig(t *testing.T) {
	home := t.TempDir()

	path := WriteConfig(t, home, "log:\n  format: json\n")

	assert.Equal(t, filepath.Join(home, ".bfhl", "config.yaml"), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "log:\n  format: json\n", string(data))
}
