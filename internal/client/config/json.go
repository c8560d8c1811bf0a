package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/vincenttwizere/Refuture-sub002/internal/flagx"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. Timeouts are
// given in seconds; values are copied into the runtime Config afterwards.
type jsonConfig struct {
	ServerBaseURL         string `json:"server_base_url"`
	StoragePath           string `json:"storage_path"`
	RequestTimeoutSeconds int    `json:"request_timeout_seconds"`
}

// parseJSON overlays Config with values loaded from a JSON file named by
// the -c/-config flag. No flag, no overlay. Read or unmarshal errors panic;
// intended usage is defaults -> parseJSON -> parseFlags.
func parseJSON(cfg *Config) {
	path := flagx.ConfigFilePath(os.Args[1:])
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerBaseURL != "" {
		cfg.ServerBaseURL = jc.ServerBaseURL
	}
	if jc.StoragePath != "" {
		cfg.StoragePath = jc.StoragePath
	}
	if jc.RequestTimeoutSeconds > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeoutSeconds) * time.Second
	}
}
