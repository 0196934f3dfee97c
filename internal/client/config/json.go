package config

import (
	"encoding/json"
	"os"

	"casefile/internal/flagx"
	"casefile/internal/timex"
)

// JsonConfig is the DTO for JSON unmarshalling. Durations may be strings
// like "15s" or integer nanoseconds (timex.Duration).
type JsonConfig struct {
	ServerBaseURL        string         `json:"server_base_url"`
	ChatHubURL           string         `json:"chat_hub_url"`
	RequestTimeout       timex.Duration `json:"request_timeout"`
	DatabaseDSN          string         `json:"database_dsn"`
	ReconnectBaseDelay   timex.Duration `json:"reconnect_base_delay"`
	ReconnectMaxAttempts uint64         `json:"reconnect_max_attempts"`
}

// parseJson overlays cfg with values from the JSON file named by -c/-config.
// No file flag, no overlay. Zero-valued JSON fields leave the existing
// config untouched; read or unmarshal failures panic (caller may recover).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerBaseURL != "" {
		cfg.ServerBaseURL = jc.ServerBaseURL
	}
	if jc.ChatHubURL != "" {
		cfg.ChatHubURL = jc.ChatHubURL
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.ReconnectBaseDelay.Duration > 0 {
		cfg.ReconnectBaseDelay = jc.ReconnectBaseDelay.Duration
	}
	if jc.ReconnectMaxAttempts > 0 {
		cfg.ReconnectMaxAttempts = jc.ReconnectMaxAttempts
	}
}
