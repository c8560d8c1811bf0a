package config

import (
	"flag"
	"os"
	"time"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the backend server (default from Config)
//	-s string   path of the local storage file
//	-t int      request timeout in seconds
//	-c string   path to a JSON config file (consumed by parseJSON)
func parseFlags(cfg *Config) {
	fs := flag.NewFlagSet("client", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "base URL of the backend server")
	fs.StringVar(&cfg.StoragePath, "s", cfg.StoragePath, "path of the local storage file")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	// Declared so the flag set accepts it; the value was already consumed
	// by parseJSON before flags are applied.
	var configFile string
	fs.StringVar(&configFile, "c", "", "path to config file")
	fs.StringVar(&configFile, "config", "", "path to config file")

	if err := fs.Parse(os.Args[1:]); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
