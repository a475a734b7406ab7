// Package config loads application settings from an optional YAML file and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// マーケットデータのプロバイダー名
const (
	ProviderYahoo      = "yahoo"
	ProviderTwelveData = "twelvedata"
	ProviderPolygon    = "polygon"
)

const (
	DefaultPath     = "config.yaml"
	DefaultAddr     = ":8050"
	DefaultProvider = ProviderYahoo
)

// ErrUnknownProvider は provider に未対応の値が指定された場合に返されます。
var ErrUnknownProvider = errors.New("unknown market provider")

// YahooConfig はYahoo Financeチャートエンドポイントの設定です。
type YahooConfig struct {
	BaseURL string `yaml:"base_url"`
}

// TwelveDataConfig はTwelve Data APIの設定です。
type TwelveDataConfig struct {
	APIKey        string            `yaml:"api_key"`
	BaseURL       string            `yaml:"base_url"`
	RatePerMinute int               `yaml:"rate_per_minute"`
	Symbols       map[string]string `yaml:"symbols"`
}

// PolygonConfig はPolygon.io APIの設定です。
type PolygonConfig struct {
	APIKey  string            `yaml:"api_key"`
	Symbols map[string]string `yaml:"symbols"`
}

// Config holds all application configuration.
type Config struct {
	Debug       bool             `yaml:"debug"`
	Addr        string           `yaml:"addr"`
	Provider    string           `yaml:"provider"`
	HTTPTimeout time.Duration    `yaml:"http_timeout"`
	Yahoo       YahooConfig      `yaml:"yahoo"`
	TwelveData  TwelveDataConfig `yaml:"twelvedata"`
	Polygon     PolygonConfig    `yaml:"polygon"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
// A missing file is not an error. Values absent from both sources keep their defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Debug:    true,
		Addr:     DefaultAddr,
		Provider: DefaultProvider,
	}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv は環境変数で設定を上書きします。
func applyEnv(cfg *Config) error {
	if v := os.Getenv("DEBUG"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parse DEBUG %q: %w", v, err)
		}
		cfg.Debug = b
	}
	if v := os.Getenv("ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("MARKET_PROVIDER"); v != "" {
		cfg.Provider = v
	}
	if v := os.Getenv("HTTP_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse HTTP_TIMEOUT %q: %w", v, err)
		}
		cfg.HTTPTimeout = d
	}
	if v := os.Getenv("YAHOO_BASE_URL"); v != "" {
		cfg.Yahoo.BaseURL = v
	}
	if v := os.Getenv("TWELVE_DATA_API_KEY"); v != "" {
		cfg.TwelveData.APIKey = v
	}
	if v := os.Getenv("TWELVE_DATA_BASE_URL"); v != "" {
		cfg.TwelveData.BaseURL = v
	}
	if v := os.Getenv("TWELVE_DATA_RATE_PER_MINUTE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse TWELVE_DATA_RATE_PER_MINUTE %q: %w", v, err)
		}
		cfg.TwelveData.RatePerMinute = n
	}
	if v := os.Getenv("POLYGON_API_KEY"); v != "" {
		cfg.Polygon.APIKey = v
	}
	return nil
}

// Validate checks that the selected provider is known and has the credentials it needs.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr is required")
	}
	if c.HTTPTimeout < 0 {
		return fmt.Errorf("http_timeout must not be negative")
	}
	switch c.Provider {
	case ProviderYahoo:
	case ProviderTwelveData:
		if c.TwelveData.APIKey == "" {
			return fmt.Errorf("twelvedata.api_key is required for provider %q", c.Provider)
		}
	case ProviderPolygon:
		if c.Polygon.APIKey == "" {
			return fmt.Errorf("polygon.api_key is required for provider %q", c.Provider)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownProvider, c.Provider)
	}
	return nil
}
