package config

import (
	"os"

	"github.com/opmodel/bfhl/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue is one configuration value with its origin.
type ResolvedValue struct {
	Key    string
	Value  interface{}
	Source ConfigSource
}

// Resolve reports every key's effective value and source. Call after Load.
func (l *Loader) Resolve() []ResolvedValue {
	keys := Keys()
	values := make([]ResolvedValue, 0, len(keys))
	for _, key := range keys {
		values = append(values, ResolvedValue{
			Key:    key,
			Value:  l.v.Get(key),
			Source: l.source(key),
		})
	}
	return values
}

func (l *Loader) source(key string) ConfigSource {
	if f, ok := l.flags[key]; ok && f.Changed {
		return SourceFlag
	}
	if _, ok := os.LookupEnv(EnvName(key)); ok {
		return SourceEnv
	}
	if l.fileRead && l.v.InConfig(key) {
		return SourceConfig
	}
	return SourceDefault
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) BFHL_CONFIG env, (3) ~/.bfhl/config.yaml default
func ResolveConfigPath(flagValue string) (string, ConfigSource, error) {
	if flagValue != "" {
		return flagValue, SourceFlag, nil
	}
	if env := os.Getenv(EnvConfig); env != "" {
		return env, SourceEnv, nil
	}
	paths, err := DefaultPaths()
	if err != nil {
		return "", "", err
	}
	return paths.ConfigFile, SourceDefault, nil
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
	}
}
