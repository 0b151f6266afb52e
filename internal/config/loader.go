package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Environment variable prefix for bfhl configuration.
const envPrefix = "BFHL"

// Loader handles loading and merging configuration from multiple sources.
// Precedence: bound flags > BFHL_* environment > config file > defaults.
type Loader struct {
	v          *viper.Viper
	flags      map[string]*pflag.Flag
	configFile string
	fileRead   bool
}

// NewLoader creates a new configuration loader with defaults registered.
func NewLoader() *Loader {
	v := viper.New()

	// Set up environment variable bindings
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults make every key known to viper, which AutomaticEnv needs
	// for Unmarshal to see env-only values.
	for key, value := range defaultValues() {
		v.SetDefault(key, value)
	}

	return &Loader{
		v:     v,
		flags: make(map[string]*pflag.Flag),
	}
}

// EnvName returns the environment variable that overrides key.
func EnvName(key string) string {
	return envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// BindFlag makes flag override key when it is set on the command line.
func (l *Loader) BindFlag(key string, flag *pflag.Flag) error {
	if flag == nil {
		return fmt.Errorf("binding %s: flag not defined", key)
	}
	if err := l.v.BindPFlag(key, flag); err != nil {
		return fmt.Errorf("binding %s to --%s: %w", key, flag.Name, err)
	}
	l.flags[key] = flag
	return nil
}

// Load loads configuration from the given file path.
// If configFile is empty, it uses the default config file path.
// A missing file is not an error; defaults and env vars still apply.
func (l *Loader) Load(configFile string) (*Config, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return nil, fmt.Errorf("getting config file path: %w", err)
		}
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}
	l.configFile = expandedPath

	l.v.SetConfigFile(expandedPath)
	l.v.SetConfigType("yaml")

	l.fileRead = true
	if err := l.v.ReadInConfig(); err != nil {
		l.fileRead = false
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// ConfigFile returns the expanded path passed to the last Load.
func (l *Loader) ConfigFile() string {
	return l.configFile
}

// FileRead reports whether the last Load found and parsed a config file.
func (l *Loader) FileRead() bool {
	return l.fileRead
}
