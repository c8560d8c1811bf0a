// Package flagx holds small helpers for config parsing shared by the
// client and server binaries.
package flagx

import "strings"

// ConfigFilePath pre-scans command-line arguments for a config file path
// given as "-c path", "-config path", or the "=" forms, without consuming
// any other flags. It returns "" when no config flag is present.
//
// The main flag set parses the same flags again later; this helper only
// exists because the JSON overlay must be read before flags are applied
// (defaults -> JSON -> flags, later sources win).
func ConfigFilePath(args []string) string {
	isConfigFlag := func(name string) bool {
		return name == "-c" || name == "-config" || name == "--config"
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if name, value, ok := strings.Cut(arg, "="); ok && isConfigFlag(name) {
			return value
		}
		if isConfigFlag(arg) && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}
