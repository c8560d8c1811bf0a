package config

import (
	"flag"
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

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 24*time.Hour, cfg.TokenValidity)
	assert.Equal(t, "refuture-documents", cfg.S3Bucket)
}

func TestParseEnv(t *testing.T) {
	t.Setenv("REFUTURE_ADDR", ":9090")
	t.Setenv("REFUTURE_DATABASE_DSN", "postgres://env")
	t.Setenv("REFUTURE_REDIS_DB", "3")
	t.Setenv("REFUTURE_SECRET_KEY", "env-secret")
	t.Setenv("REFUTURE_TOKEN_VALIDITY", "12h")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "postgres://env", cfg.DatabaseDSN)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, "env-secret", cfg.SecretKey)
	assert.Equal(t, 12*time.Hour, cfg.TokenValidity)
}

func TestParseEnvIgnoresBadValues(t *testing.T) {
	t.Setenv("REFUTURE_REDIS_DB", "not-a-number")
	t.Setenv("REFUTURE_TOKEN_VALIDITY", "soon")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, 0, cfg.RedisDB)
	assert.Equal(t, 24*time.Hour, cfg.TokenValidity)
}

func TestParseFlags(t *testing.T) {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.PanicOnError)
	os.Args = []string{"cmd", "-a", ":9999", "-d", "postgres://flag", "-r", "redis:6379", "-k", "flag-secret"}

	cfg := &Config{}
	cfg.LoadDefaults()
	require.NotPanics(t, func() { parseFlags(cfg) })

	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, "postgres://flag", cfg.DatabaseDSN)
	assert.Equal(t, "redis:6379", cfg.RedisAddr)
	assert.Equal(t, "flag-secret", cfg.SecretKey)
}

func TestParseJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"addr": ":7070",
		"redis_db": 5,
		"token_validity": "48h",
		"s3_bucket": "other-bucket"
	}`), 0o600))

	os.Args = []string{"cmd", "-c", path}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)

	assert.Equal(t, ":7070", cfg.Addr)
	assert.Equal(t, 5, cfg.RedisDB)
	assert.Equal(t, 48*time.Hour, cfg.TokenValidity)
	assert.Equal(t, "other-bucket", cfg.S3Bucket)
	// Untouched fields keep their defaults.
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
}
