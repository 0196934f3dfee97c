package config

import (
	"strings"
	"time"
)

// Config holds runtime settings for the casefile CLI.
//
// Fields:
//   - ServerBaseURL: scheme://host[:port] of the backend REST API.
//   - ChatHubURL: ws(s) base of the chat hub; derived from ServerBaseURL
//     when empty.
//   - RequestTimeout: per-request deadline for REST calls.
//   - DatabaseDSN: sqlite file holding the persisted credential.
//   - ReconnectBaseDelay / ReconnectMaxAttempts: chat redial backoff.
type Config struct {
	ServerBaseURL        string
	ChatHubURL           string
	RequestTimeout       time.Duration
	DatabaseDSN          string
	ReconnectBaseDelay   time.Duration
	ReconnectMaxAttempts uint64
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "https://localhost:7029"
	c.ChatHubURL = ""
	c.RequestTimeout = 15 * time.Second
	c.DatabaseDSN = "casefile.db"
	c.ReconnectBaseDelay = 500 * time.Millisecond
	c.ReconnectMaxAttempts = 5
}

// HubURL resolves the chat hub base: the explicit ChatHubURL when set,
// otherwise ServerBaseURL with the scheme switched to ws(s).
func (c *Config) HubURL() string {
	if c.ChatHubURL != "" {
		return c.ChatHubURL
	}
	if rest, ok := strings.CutPrefix(c.ServerBaseURL, "https://"); ok {
		return "wss://" + rest
	}
	if rest, ok := strings.CutPrefix(c.ServerBaseURL, "http://"); ok {
		return "ws://" + rest
	}
	return c.ServerBaseURL
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags. Later sources win.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
