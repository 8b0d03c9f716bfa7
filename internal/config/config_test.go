package config_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/herdmethane/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_PORT", "LOG_LEVEL", "PRESETS_FILE", "DEFAULT_PRESET", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST",
		"WHATSAPP_TOKEN", "WHATSAPP_PHONE_NUMBER_ID", "META_VERIFY_TOKEN", "WHATSAPP_BASE_URL", "WHATSAPP_API_VERSION",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, config.PresetStandard, cfg.Presets.Default)
	assert.Empty(t, cfg.Presets.File)
	assert.Equal(t, 10.0, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 20, cfg.RateLimit.Burst)
	assert.False(t, cfg.WhatsApp.Enabled())
	assert.Equal(t, "https://graph.facebook.com", cfg.WhatsApp.BaseURL)
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DEFAULT_PRESET", "ar6")
	t.Setenv("PRESETS_FILE", "/etc/methane/presets.yaml")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "4")
	t.Setenv("WHATSAPP_TOKEN", "token")
	t.Setenv("WHATSAPP_PHONE_NUMBER_ID", "12345")
	t.Setenv("META_VERIFY_TOKEN", "verify")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "ar6", cfg.Presets.Default)
	assert.Equal(t, "/etc/methane/presets.yaml", cfg.Presets.File)
	assert.Equal(t, 2.5, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 4, cfg.RateLimit.Burst)
	assert.True(t, cfg.WhatsApp.Enabled())
	assert.Equal(t, "12345", cfg.WhatsApp.PhoneNumberID)
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]map[string]string{
		"rps not a number":        {"RATE_LIMIT_RPS": "fast"},
		"burst not an integer":    {"RATE_LIMIT_BURST": "1.5"},
		"zero rps":                {"RATE_LIMIT_RPS": "0"},
		"whatsapp without phone":  {"WHATSAPP_TOKEN": "token", "META_VERIFY_TOKEN": "verify"},
		"whatsapp without verify": {"WHATSAPP_TOKEN": "token", "WHATSAPP_PHONE_NUMBER_ID": "1"},
	}

	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range env {
				t.Setenv(k, v)
			}

			_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
			assert.Error(t, err)
		})
	}
}

func TestValidate_Nil(t *testing.T) {
	var cfg *config.Config
	assert.Error(t, cfg.Validate())
}
