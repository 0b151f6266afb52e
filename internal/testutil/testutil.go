// Package testutil provides test helpers for CLI tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// EnvPrefix is the prefix of every environment variable bfhl reads.
const EnvPrefix = "BFHL_"

// IsolateEnv unsets every BFHL_* variable for the duration of the test.
func IsolateEnv(t *testing.T) {
	t.Helper()
	for _, kv := range os.Environ() {
		key, value, _ := strings.Cut(kv, "=")
		if !strings.HasPrefix(key, EnvPrefix) {
			continue
		}
		// Setenv registers the restore; Unsetenv makes LookupEnv miss.
		t.Setenv(key, value)
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("failed to unset %s: %v", key, err)
		}
	}
}

// IsolateHome points HOME at a fresh temp dir, with no BFHL_* variables
// set, and returns the directory.
func IsolateHome(t *testing.T) string {
	t.Helper()
	IsolateEnv(t)
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

// WriteFile creates a file with the given content in the specified directory.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// WriteConfig writes a config file at the default location under home.
func WriteConfig(t *testing.T, home, content string) string {
	t.Helper()
	return WriteFile(t, home, filepath.Join(".bfhl", "config.yaml"), content)
}
