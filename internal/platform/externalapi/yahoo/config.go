// Package yahoo provides a client for the Yahoo Finance chart API.
package yahoo

import "time"

// DefaultBaseURL is the public Yahoo Finance query host.
const DefaultBaseURL = "https://query1.finance.yahoo.com"

// Config holds configuration for the Yahoo Finance client.
type Config struct {
	BaseURL   string        // Base URL for the API (e.g., "https://query1.finance.yahoo.com")
	UserAgent string        // Yahoo rejects requests without a browser-like agent
	Timeout   time.Duration // HTTP request timeout; 0 means no client timeout
}

func (c Config) withDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.UserAgent == "" {
		c.UserAgent = "Mozilla/5.0"
	}
	return c
}
