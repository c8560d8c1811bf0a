package config

import (
	"os"
	"strconv"
	"time"
)

// parseEnv overlays Config with environment variables. Empty variables are
// ignored. The server entrypoint loads .env via godotenv before this runs.
func parseEnv(cfg *Config) {
	if v := os.Getenv("REFUTURE_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("REFUTURE_DATABASE_DSN"); v != "" {
		cfg.DatabaseDSN = v
	}
	if v := os.Getenv("REFUTURE_REDIS_ADDR"); v != "" {
		cfg.RedisAddr = v
	}
	if v := os.Getenv("REFUTURE_REDIS_PASSWORD"); v != "" {
		cfg.RedisPassword = v
	}
	if v := os.Getenv("REFUTURE_REDIS_DB"); v != "" {
		if db, err := strconv.Atoi(v); err == nil {
			cfg.RedisDB = db
		}
	}
	if v := os.Getenv("REFUTURE_SECRET_KEY"); v != "" {
		cfg.SecretKey = v
	}
	if v := os.Getenv("REFUTURE_TOKEN_VALIDITY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.TokenValidity = d
		}
	}
	if v := os.Getenv("REFUTURE_S3_ACCESS_KEY"); v != "" {
		cfg.S3AccessKey = v
	}
	if v := os.Getenv("REFUTURE_S3_SECRET_KEY"); v != "" {
		cfg.S3SecretKey = v
	}
	if v := os.Getenv("REFUTURE_S3_BUCKET"); v != "" {
		cfg.S3Bucket = v
	}
	if v := os.Getenv("REFUTURE_S3_REGION"); v != "" {
		cfg.S3Region = v
	}
	if v := os.Getenv("REFUTURE_S3_ENDPOINT"); v != "" {
		cfg.S3BaseEndpoint = v
	}
}
