package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clicksign-esign/pkg/clicksign"
)

func loadFrom(t *testing.T, yaml string) (*Config, error) {
	t.Helper()
	dir := t.TempDir()
	if yaml != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	return load(v)
}

func TestLoad_FromFile(t *testing.T) {
	cfg, err := loadFrom(t, `
app:
  name: gateway
  port: 9090
  env: production
clicksign:
  host: https://sandbox.clicksign.com/api/v1
  access_token: file-token
  timeout: 10
  capture_error_body: true
logging:
  level: debug
`)
	require.NoError(t, err)

	assert.Equal(t, "gateway", cfg.App.Name)
	assert.Equal(t, 9090, cfg.App.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "https://sandbox.clicksign.com/api/v1/", cfg.Clicksign.Host)
	assert.Equal(t, "file-token", cfg.Clicksign.AccessToken)
	assert.Equal(t, 10*time.Second, cfg.Clicksign.Timeout)
	assert.True(t, cfg.Clicksign.CaptureErrorBody)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CLICKSIGN_ACCESS_TOKEN", "env-token")

	cfg, err := loadFrom(t, "")
	require.NoError(t, err)

	assert.Equal(t, clicksign.DefaultHost, cfg.Clicksign.Host)
	assert.Equal(t, "env-token", cfg.Clicksign.AccessToken)
	assert.Equal(t, 30*time.Second, cfg.Clicksign.Timeout)
	assert.False(t, cfg.Clicksign.CaptureErrorBody)
	assert.Equal(t, 8080, cfg.App.Port)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("CLICKSIGN_ACCESS_TOKEN", "env-token")

	cfg, err := loadFrom(t, `
clicksign:
  access_token: file-token
`)
	require.NoError(t, err)
	assert.Equal(t, "env-token", cfg.Clicksign.AccessToken)
}

func TestLoad_MissingToken(t *testing.T) {
	_, err := loadFrom(t, `
app:
  port: 9090
`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access_token")
}

func TestClicksignConfig_Normalize(t *testing.T) {
	tests := []struct {
		host string
		want string
	}{
		{"", clicksign.DefaultHost},
		{"https://api.example.com", "https://api.example.com/"},
		{"https://api.example.com/", "https://api.example.com/"},
	}
	for _, tt := range tests {
		c := ClicksignConfig{Host: tt.host}
		c.Normalize()
		assert.Equal(t, tt.want, c.Host)
	}
}
