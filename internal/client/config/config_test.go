package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, "https://localhost:7029", cfg.ServerBaseURL)
	assert.Empty(t, cfg.ChatHubURL)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "casefile.db", cfg.DatabaseDSN)
	assert.Equal(t, 500*time.Millisecond, cfg.ReconnectBaseDelay)
	assert.Equal(t, uint64(5), cfg.ReconnectMaxAttempts)
}

func TestHubURL(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{"explicit hub wins", Config{ServerBaseURL: "https://api.example.com", ChatHubURL: "wss://chat.example.com"}, "wss://chat.example.com"},
		{"https becomes wss", Config{ServerBaseURL: "https://localhost:7029"}, "wss://localhost:7029"},
		{"http becomes ws", Config{ServerBaseURL: "http://localhost:5000"}, "ws://localhost:5000"},
		{"unknown scheme passes through", Config{ServerBaseURL: "localhost:7029"}, "localhost:7029"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.HubURL())
		})
	}
}

func TestParseJson(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.json")
	data := `{
		"server_base_url": "https://game.example.com",
		"request_timeout": "30s",
		"reconnect_max_attempts": 9
	}`
	require.NoError(t, os.WriteFile(file, []byte(data), 0o644))

	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"test", "-c", file}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, "https://game.example.com", cfg.ServerBaseURL)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, uint64(9), cfg.ReconnectMaxAttempts)
	// untouched fields keep their defaults
	assert.Equal(t, "casefile.db", cfg.DatabaseDSN)
	assert.Equal(t, 500*time.Millisecond, cfg.ReconnectBaseDelay)
}

func TestParseJson_NoFlag(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"test"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, "https://localhost:7029", cfg.ServerBaseURL)
}

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"test", "-a", "https://cli.example.com", "-d", "/tmp/creds.db", "-t", "45"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, "https://cli.example.com", cfg.ServerBaseURL)
	assert.Equal(t, "/tmp/creds.db", cfg.DatabaseDSN)
	assert.Equal(t, 45*time.Second, cfg.RequestTimeout)
}

func TestParseFlags_IgnoresForeignFlags(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"test", "-x", "whatever", "-a", "https://cli.example.com"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, "https://cli.example.com", cfg.ServerBaseURL)
}
