package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/opmodel/bfhl/internal/errors"
)

func fieldsOf(err error) []string {
	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	fields := make([]string, 0, len(verrs))
	for _, e := range verrs {
		fields = append(fields, e.Field)
	}
	return fields
}

func TestValidator_DefaultConfigIsValid(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	assert.NoError(t, v.Validate(DefaultConfig()))
}

func TestValidator_EmptyIdentityIsValid(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	cfg := DefaultConfig()
	cfg.Identity = IdentityConfig{}
	assert.NoError(t, v.Validate(cfg), "identity values are echoed unvalidated")
}

func TestValidator_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
		{"addr without port", func(c *Config) { c.Server.Addr = "localhost" }, "server.addr"},
		{"port out of range", func(c *Config) { c.Server.Addr = ":99999" }, "server.addr"},
		{"zero body limit", func(c *Config) { c.Server.MaxBodyBytes = 0 }, "server.maxBodyBytes"},
		{"negative timeout", func(c *Config) { c.Server.ReadTimeout = -1 }, "server.readTimeout"},
		{"zero shutdown timeout", func(c *Config) { c.Server.ShutdownTimeout = 0 }, "server.shutdownTimeout"},
	}

	v, err := NewValidator()
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := v.Validate(cfg)
			require.Error(t, err)
			assert.True(t, errors.Is(err, oerrors.ErrValidation))
			assert.Contains(t, fieldsOf(err), tt.field)
		})
	}
}

func TestValidator_ValidateFile(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	assert.NoError(t, v.ValidateFile(writeConfig(t, "identity:\n  fullName: Jane Roe\n")))

	err = v.ValidateFile(writeConfig(t, "log:\n  format: xml\n"))
	require.Error(t, err)
	assert.Contains(t, fieldsOf(err), "log.format")
}

func TestValidationErrorsError(t *testing.T) {
	assert.Equal(t, "no validation errors", ValidationErrors{}.Error())

	errs := ValidationErrors{{Field: "log.format", Message: "invalid"}}
	assert.Contains(t, errs.Error(), "config validation failed")
	assert.Contains(t, errs.Error(), "log.format: invalid")

	single := &ValidationError{Field: "server.addr", Message: "bad"}
	assert.Equal(t, "server.addr: bad", single.Error())
	assert.True(t, errors.Is(single, oerrors.ErrValidation))
}
