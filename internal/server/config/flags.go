package config

import (
	"flag"
	"os"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   bind address of the HTTP API
//	-d string   PostgreSQL DSN
//	-r string   Redis address
//	-k string   JWT signing secret
//	-c string   path to a JSON config file (consumed by parseJSON)
func parseFlags(cfg *Config) {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)

	fs.StringVar(&cfg.Addr, "a", cfg.Addr, "bind address of the HTTP API")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "PostgreSQL DSN")
	fs.StringVar(&cfg.RedisAddr, "r", cfg.RedisAddr, "Redis address")
	fs.StringVar(&cfg.SecretKey, "k", cfg.SecretKey, "JWT signing secret")

	var configFile string
	fs.StringVar(&configFile, "c", "", "path to config file")
	fs.StringVar(&configFile, "config", "", "path to config file")

	if err := fs.Parse(os.Args[1:]); err != nil {
		panic(err)
	}
}
