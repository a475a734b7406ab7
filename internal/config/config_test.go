package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.True(t, cfg.Debug)
	assert.Equal(t, ":8050", cfg.Addr)
	assert.Equal(t, ProviderYahoo, cfg.Provider)
	assert.Zero(t, cfg.HTTPTimeout)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_YAML(t *testing.T) {
	path := writeConfig(t, `
debug: false
addr: ":9000"
provider: twelvedata
http_timeout: 15s
twelvedata:
  api_key: from-file
  rate_per_minute: 8
  symbols:
    GC=F: GLD
polygon:
  symbols:
    ES=F: SPY
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.False(t, cfg.Debug)
	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, ProviderTwelveData, cfg.Provider)
	assert.Equal(t, 15*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "from-file", cfg.TwelveData.APIKey)
	assert.Equal(t, 8, cfg.TwelveData.RatePerMinute)
	assert.Equal(t, map[string]string{"GC=F": "GLD"}, cfg.TwelveData.Symbols)
	assert.Equal(t, map[string]string{"ES=F": "SPY"}, cfg.Polygon.Symbols)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `
provider: twelvedata
twelvedata:
  api_key: from-file
`)
	t.Setenv("DEBUG", "false")
	t.Setenv("ADDR", ":7000")
	t.Setenv("MARKET_PROVIDER", "polygon")
	t.Setenv("HTTP_TIMEOUT", "3s")
	t.Setenv("YAHOO_BASE_URL", "http://yahoo.test")
	t.Setenv("TWELVE_DATA_API_KEY", "from-env")
	t.Setenv("TWELVE_DATA_BASE_URL", "http://twelvedata.test")
	t.Setenv("TWELVE_DATA_RATE_PER_MINUTE", "55")
	t.Setenv("POLYGON_API_KEY", "poly-key")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.False(t, cfg.Debug)
	assert.Equal(t, ":7000", cfg.Addr)
	assert.Equal(t, ProviderPolygon, cfg.Provider)
	assert.Equal(t, 3*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "http://yahoo.test", cfg.Yahoo.BaseURL)
	assert.Equal(t, "from-env", cfg.TwelveData.APIKey)
	assert.Equal(t, "http://twelvedata.test", cfg.TwelveData.BaseURL)
	assert.Equal(t, 55, cfg.TwelveData.RatePerMinute)
	assert.Equal(t, "poly-key", cfg.Polygon.APIKey)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		env  map[string]string
	}{
		{name: "invalid yaml", yaml: "debug: [unclosed"},
		{name: "invalid DEBUG", env: map[string]string{"DEBUG": "maybe"}},
		{name: "invalid HTTP_TIMEOUT", env: map[string]string{"HTTP_TIMEOUT": "soon"}},
		{name: "invalid rate", env: map[string]string{"TWELVE_DATA_RATE_PER_MINUTE": "eight"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := writeConfig(t, tt.yaml)

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"yahoo needs no key", Config{Addr: ":8050", Provider: ProviderYahoo}, false},
		{"twelvedata with key", Config{Addr: ":8050", Provider: ProviderTwelveData, TwelveData: TwelveDataConfig{APIKey: "k"}}, false},
		{"twelvedata without key", Config{Addr: ":8050", Provider: ProviderTwelveData}, true},
		{"polygon with key", Config{Addr: ":8050", Provider: ProviderPolygon, Polygon: PolygonConfig{APIKey: "k"}}, false},
		{"polygon without key", Config{Addr: ":8050", Provider: ProviderPolygon}, true},
		{"unknown provider", Config{Addr: ":8050", Provider: "bloomberg"}, true},
		{"empty addr", Config{Provider: ProviderYahoo}, true},
		{"negative timeout", Config{Addr: ":8050", Provider: ProviderYahoo, HTTPTimeout: -time.Second}, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_Validate_UnknownProvider(t *testing.T) {
	t.Parallel()

	cfg := Config{Addr: ":8050", Provider: "bloomberg"}
	assert.ErrorIs(t, cfg.Validate(), ErrUnknownProvider)
}
