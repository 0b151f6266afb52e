// Package config provides configuration loading and management.
package config

import (
	"time"

	"github.com/opmodel/bfhl/internal/classify"
)

// IdentityConfig holds the values echoed in every classification result.
type IdentityConfig struct {
	// FullName is lower-cased and joined with underscores into user_id.
	// Env: BFHL_IDENTITY_FULLNAME, Default: "John Doe"
	FullName string `json:"fullName" yaml:"fullName" mapstructure:"fullName"`

	// DOB is the date of birth appended to user_id, echoed as configured.
	// Env: BFHL_IDENTITY_DOB, Default: "17091999"
	DOB string `json:"dob" yaml:"dob" mapstructure:"dob"`

	// Email is echoed verbatim.
	// Env: BFHL_IDENTITY_EMAIL, Default: "john@xyz.com"
	Email string `json:"email" yaml:"email" mapstructure:"email"`

	// RollNumber is echoed verbatim.
	// Env: BFHL_IDENTITY_ROLLNUMBER, Default: "ABCD123"
	RollNumber string `json:"rollNumber" yaml:"rollNumber" mapstructure:"rollNumber"`
}

// Identity converts the config into the classifier's identity value.
func (c IdentityConfig) Identity() classify.Identity {
	return classify.Identity{
		FullName:    c.FullName,
		DateOfBirth: c.DOB,
		Email:       c.Email,
		RollNumber:  c.RollNumber,
	}
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	// Addr is the listen address.
	// Env: BFHL_SERVER_ADDR, Flag: --addr, Default: ":8080"
	Addr string `json:"addr" yaml:"addr" mapstructure:"addr"`

	// ReadTimeout bounds reading a whole request, body included.
	ReadTimeout time.Duration `json:"readTimeout" yaml:"readTimeout" mapstructure:"readTimeout"`

	// WriteTimeout bounds writing the response.
	WriteTimeout time.Duration `json:"writeTimeout" yaml:"writeTimeout" mapstructure:"writeTimeout"`

	// IdleTimeout bounds keep-alive connections.
	IdleTimeout time.Duration `json:"idleTimeout" yaml:"idleTimeout" mapstructure:"idleTimeout"`

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `json:"shutdownTimeout" yaml:"shutdownTimeout" mapstructure:"shutdownTimeout"`

	// MaxBodyBytes caps the request body size.
	MaxBodyBytes int64 `json:"maxBodyBytes" yaml:"maxBodyBytes" mapstructure:"maxBodyBytes"`
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Override with --timestamps flag.
	Timestamps bool `json:"timestamps" yaml:"timestamps" mapstructure:"timestamps"`

	// Format is "text" or "json".
	Format string `json:"format" yaml:"format" mapstructure:"format"`
}

// Log formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config represents the bfhl configuration.
// Loaded from ~/.bfhl/config.yaml, validated against the embedded CUE schema.
type Config struct {
	Identity IdentityConfig `json:"identity" yaml:"identity" mapstructure:"identity"`
	Server   ServerConfig   `json:"server" yaml:"server" mapstructure:"server"`
	Log      LogConfig      `json:"log" yaml:"log" mapstructure:"log"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `bfhl config init` and as the lowest precedence layer.
func DefaultConfig() *Config {
	return &Config{
		Identity: IdentityConfig{
			FullName:   "John Doe",
			DOB:        "17091999",
			Email:      "john@xyz.com",
			RollNumber: "ABCD123",
		},
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			IdleTimeout:     120 * time.Second,
			ShutdownTimeout: 15 * time.Second,
			MaxBodyBytes:    1 << 20,
		},
		Log: LogConfig{
			Timestamps: true,
			Format:     LogFormatText,
		},
	}
}

// defaultValues flattens DefaultConfig into viper keys.
func defaultValues() map[string]interface{} {
	d := DefaultConfig()
	return map[string]interface{}{
		KeyFullName:        d.Identity.FullName,
		KeyDOB:             d.Identity.DOB,
		KeyEmail:           d.Identity.Email,
		KeyRollNumber:      d.Identity.RollNumber,
		KeyAddr:            d.Server.Addr,
		KeyReadTimeout:     d.Server.ReadTimeout,
		KeyWriteTimeout:    d.Server.WriteTimeout,
		KeyIdleTimeout:     d.Server.IdleTimeout,
		KeyShutdownTimeout: d.Server.ShutdownTimeout,
		KeyMaxBodyBytes:    d.Server.MaxBodyBytes,
		KeyLogTimestamps:   d.Log.Timestamps,
		KeyLogFormat:       d.Log.Format,
	}
}

// Config keys, in display order.
const (
	KeyFullName        = "identity.fullName"
	KeyDOB             = "identity.dob"
	KeyEmail           = "identity.email"
	KeyRollNumber      = "identity.rollNumber"
	KeyAddr            = "server.addr"
	KeyReadTimeout     = "server.readTimeout"
	KeyWriteTimeout    = "server.writeTimeout"
	KeyIdleTimeout     = "server.idleTimeout"
	KeyShutdownTimeout = "server.shutdownTimeout"
	KeyMaxBodyBytes    = "server.maxBodyBytes"
	KeyLogTimestamps   = "log.timestamps"
	KeyLogFormat       = "log.format"
)

// Keys returns every config key in display order.
func Keys() []string {
	return []string{
		KeyFullName, KeyDOB, KeyEmail, KeyRollNumber,
		KeyAddr, KeyReadTimeout, KeyWriteTimeout, KeyIdleTimeout, KeyShutdownTimeout, KeyMaxBodyBytes,
		KeyLogTimestamps, KeyLogFormat,
	}
}
