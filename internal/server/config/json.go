package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/vincenttwizere/Refuture-sub002/internal/flagx"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. The token
// validity is a Go duration string, e.g. "24h".
type jsonConfig struct {
	Addr           string `json:"addr"`
	DatabaseDSN    string `json:"database_dsn"`
	RedisAddr      string `json:"redis_addr"`
	RedisPassword  string `json:"redis_password"`
	RedisDB        *int   `json:"redis_db"`
	SecretKey      string `json:"secret_key"`
	TokenValidity  string `json:"token_validity"`
	S3AccessKey    string `json:"s3_access_key"`
	S3SecretKey    string `json:"s3_secret_key"`
	S3Bucket       string `json:"s3_bucket"`
	S3Region       string `json:"s3_region"`
	S3BaseEndpoint string `json:"s3_base_endpoint"`
}

// parseJSON overlays Config with values loaded from the JSON file named by
// the -c/-config flag, if any. Read or unmarshal errors panic.
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

	if jc.Addr != "" {
		cfg.Addr = jc.Addr
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.RedisAddr != "" {
		cfg.RedisAddr = jc.RedisAddr
	}
	if jc.RedisPassword != "" {
		cfg.RedisPassword = jc.RedisPassword
	}
	if jc.RedisDB != nil {
		cfg.RedisDB = *jc.RedisDB
	}
	if jc.SecretKey != "" {
		cfg.SecretKey = jc.SecretKey
	}
	if jc.TokenValidity != "" {
		if d, err := time.ParseDuration(jc.TokenValidity); err == nil {
			cfg.TokenValidity = d
		}
	}
	if jc.S3AccessKey != "" {
		cfg.S3AccessKey = jc.S3AccessKey
	}
	if jc.S3SecretKey != "" {
		cfg.S3SecretKey = jc.S3SecretKey
	}
	if jc.S3Bucket != "" {
		cfg.S3Bucket = jc.S3Bucket
	}
	if jc.S3Region != "" {
		cfg.S3Region = jc.S3Region
	}
	if jc.S3BaseEndpoint != "" {
		cfg.S3BaseEndpoint = jc.S3BaseEndpoint
	}
}
